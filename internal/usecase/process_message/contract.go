package process_message

import (
	"context"
	"time"

	bookDirect "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_direct"
	bookRange "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_range"
	checkAvailability "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/check_availability"
)

// TimeParser интерфейс парсера естественно-языковых выражений даты/времени
type TimeParser interface {
	Parse(text string, now time.Time) (time.Time, error)
}

// CheckAvailabilityUseCase интерфейс use case проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// BookRangeUseCase интерфейс use case бронирования в окне
type BookRangeUseCase interface {
	Execute(ctx context.Context, req *bookRange.Request) (*bookRange.Response, error)
}

// BookDirectUseCase интерфейс use case бронирования конкретного времени
type BookDirectUseCase interface {
	Execute(ctx context.Context, req *bookDirect.Request) (*bookDirect.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MessageMetrics интерфейс метрик обработки сообщений
// При выключенных метриках передается no-op реализация
type MessageMetrics interface {
	ObserveMessage(intent, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
