package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// UseCase use case проверки доступности: сканирует рабочие часы дня
// и возвращает первые свободные времена начала
type UseCase struct {
	calendar       CalendarClient
	workStartHour  int
	workEndHour    int
	maxSuggestions int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// Кандидаты — каждый полный час в [workStartHour, workEndHour),
// слот фиксированной 30-минутной длительности
func NewUseCase(calendar CalendarClient, workStartHour, workEndHour, maxSuggestions int, logger Logger) *UseCase {
	return &UseCase{
		calendar:       calendar,
		workStartHour:  workStartHour,
		workEndHour:    workEndHour,
		maxSuggestions: maxSuggestions,
		logger:         logger,
	}
}

// Execute выполняет проверку доступности на указанный день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	uc.logger.Info("CheckAvailability: day=%s, window=[%d, %d)",
		req.Day.Format(domain.DateFormat), uc.workStartHour, uc.workEndHour)

	day := req.Day
	times := make([]string, 0, uc.maxSuggestions)

	// Сканируем часы по возрастанию и собираем первые maxSuggestions свободных
	for hour := uc.workStartHour; hour < uc.workEndHour; hour++ {
		if len(times) >= uc.maxSuggestions {
			break
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		slot := domain.NewTimeSlot(start)

		free, err := uc.calendar.IsTimeSlotAvailable(ctx, slot.Start, slot.End)
		if err != nil {
			uc.logger.Error("CheckAvailability: probe failed for %s: %v",
				start.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}

		if free {
			times = append(times, start.Format(domain.ClockFormat))
		}
	}

	if len(times) == 0 {
		uc.logger.Info("CheckAvailability: no free slots on %s", req.Day.Format(domain.DateFormat))
		return nil, ErrNoSlotsFound
	}

	uc.logger.Info("CheckAvailability: %d free slots found on %s", len(times), req.Day.Format(domain.DateFormat))

	return &Response{
		Day:   req.Day,
		Times: times,
	}, nil
}
