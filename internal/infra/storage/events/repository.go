package events

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/psqlbuilder"
	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/txmanager"
)

// Repository локальное календарное хранилище поверх PostgreSQL
// Реализует тот же интерфейс, что и клиент Google Calendar, и используется
// при calendar.provider = "postgres"
//
// Схема:
//
//	CREATE TABLE events (
//	    id         BIGSERIAL PRIMARY KEY,
//	    summary    TEXT        NOT NULL,
//	    starts_at  TIMESTAMPTZ NOT NULL,
//	    ends_at    TIMESTAMPTZ NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Repository struct {
	db        DBExecutor
	txManager TxManager
	log       Logger
}

// NewRepository создает новый экземпляр хранилища событий
func NewRepository(db DBExecutor, txManager TxManager, log Logger) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		log:       log,
	}
}

// IsTimeSlotAvailable возвращает true, если интервал [start, end) не пересекается
// ни с одним существующим событием. Граничащие интервалы пересечением не считаются.
func (r *Repository) IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	count, err := r.countOverlapping(ctx, start, end)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// BookSlot создает событие в интервале [start, end)
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции:
// два конкурентных бронирования одного слота не могут пройти оба
func (r *Repository) BookSlot(ctx context.Context, summary string, start, end time.Time) (*domain.CalendarEvent, error) {
	var created *domain.CalendarEvent

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := r.countOverlapping(txCtx, start, end)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotNotAvailable
		}

		query, args, err := psqlbuilder.Insert("events").
			Columns("summary", "starts_at", "ends_at").
			Values(summary, start, end).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: BookSlot - build insert query: %v", ErrBuildQuery, err)
		}

		executor := txmanager.GetExecutor(txCtx, r.db)

		var id int64
		if err := executor.QueryRowContext(txCtx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("%w: BookSlot - execute insert: %v", ErrExecQuery, err)
		}

		created = &domain.CalendarEvent{
			ID:       fmt.Sprintf("%d", id),
			Summary:  summary,
			Start:    start,
			End:      end,
			HTMLLink: fmt.Sprintf("/api/v1/events/%d", id),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info("Events: booked slot [%s, %s) event_id=%s",
		start.Format(time.RFC3339), end.Format(time.RFC3339), created.ID)

	return created, nil
}

// ListUpcomingEvents возвращает ближайшие события (не больше max) по времени начала
func (r *Repository) ListUpcomingEvents(ctx context.Context, max int) ([]domain.CalendarEvent, error) {
	query, args, err := psqlbuilder.Select("id", "summary", "starts_at", "ends_at").
		From("events").
		Where(squirrel.GtOrEq{"starts_at": time.Now()}).
		OrderBy("starts_at ASC").
		Limit(uint64(max)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingEvents - build select query: %v", ErrBuildQuery, err)
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingEvents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var (
			id       int64
			ev       domain.CalendarEvent
			startsAt time.Time
			endsAt   time.Time
		)
		if err := rows.Scan(&id, &ev.Summary, &startsAt, &endsAt); err != nil {
			return nil, fmt.Errorf("%w: ListUpcomingEvents - scan row: %v", ErrScanRow, err)
		}
		ev.ID = fmt.Sprintf("%d", id)
		ev.Start = startsAt
		ev.End = endsAt
		ev.HTMLLink = fmt.Sprintf("/api/v1/events/%d", id)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingEvents - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

// countOverlapping считает события, реально пересекающиеся с интервалом [start, end)
// Используются строгие неравенства: события, граничащие с интервалом, не учитываются
func (r *Repository) countOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("events").
		Where(squirrel.And{
			squirrel.Lt{"starts_at": end},
			squirrel.Gt{"ends_at": start},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countOverlapping - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}
