package check_availability

import (
	"context"
	"time"
)

// CalendarClient интерфейс календарного бэкенда
// Реализуется клиентом Google Calendar и локальным хранилищем событий
type CalendarClient interface {
	IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
