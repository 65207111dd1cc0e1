package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// Client клиент Google Calendar
// Реализует календарный бэкенд агента поверх calendar/v3 API:
// freebusy для проверки занятости, events.insert для создания встречи
type Client struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	timeout    time.Duration
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает клиент Google Calendar с сервисным аккаунтом
func NewClient(ctx context.Context, credentialsFile, calendarID, timezone string, timeout time.Duration, log Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
		timeout:    timeout,
		log:        log,
	}, nil
}

// IsTimeSlotAvailable возвращает true, если интервал [start, end) не пересекается
// ни с одним существующим событием календаря
func (c *Client) IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &calendar.FreeBusyRequest{
		TimeMin:  start.Format(time.RFC3339),
		TimeMax:  end.Format(time.RFC3339),
		TimeZone: c.timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		c.log.Error("GoogleCalendar: freebusy query failed for [%s, %s): %v",
			start.Format(time.RFC3339), end.Format(time.RFC3339), err)
		return false, fmt.Errorf("%w: freebusy query: %v", ErrUnavailable, err)
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return false, fmt.Errorf("%w: calendar %q missing from freebusy response", ErrInvalidResponse, c.calendarID)
	}

	return len(cal.Busy) == 0, nil
}

// BookSlot создает 30-минутное событие и возвращает его вместе со ссылкой
func (c *Client) BookSlot(ctx context.Context, summary string, start, end time.Time) (*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	event := &calendar.Event{
		Summary: summary,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		c.log.Error("GoogleCalendar: failed to insert event %q at %s: %v",
			summary, start.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: events.insert: %v", ErrUnavailable, err)
	}

	c.log.Info("GoogleCalendar: event created id=%s at %s", created.Id, start.Format(time.RFC3339))

	result, err := toDomainEvent(created, start.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// ListUpcomingEvents возвращает ближайшие события календаря (не больше max),
// отсортированные по времени начала
func (c *Client) ListUpcomingEvents(ctx context.Context, max int) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	now := time.Now()

	resp, err := c.svc.Events.List(c.calendarID).
		TimeMin(now.Format(time.RFC3339)).
		MaxResults(int64(max)).
		SingleEvents(true).
		OrderBy("startTime").
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		c.log.Error("GoogleCalendar: failed to list upcoming events: %v", err)
		return nil, fmt.Errorf("%w: events.list: %v", ErrUnavailable, err)
	}

	events := make([]domain.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, err := toDomainEvent(item, now.Location())
		if err != nil {
			// событие с непригодными датами (например, битый all-day) пропускаем
			c.log.Warn("GoogleCalendar: skipping event id=%s: %v", item.Id, err)
			continue
		}
		events = append(events, *ev)
	}

	return events, nil
}
