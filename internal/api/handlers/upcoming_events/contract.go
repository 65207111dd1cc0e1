package upcoming_events

import (
	"context"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// CalendarClient интерфейс календарного бэкенда
type CalendarClient interface {
	ListUpcomingEvents(ctx context.Context, max int) ([]domain.CalendarEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
