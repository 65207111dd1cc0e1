package book_range

import (
	"context"
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// CalendarClient интерфейс календарного бэкенда
type CalendarClient interface {
	IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error)
	BookSlot(ctx context.Context, summary string, start, end time.Time) (*domain.CalendarEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
