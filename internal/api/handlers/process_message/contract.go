package process_message

import (
	"context"

	processMessage "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/process_message"
)

// ProcessMessageUseCase интерфейс оркестратора обработки сообщений
type ProcessMessageUseCase interface {
	Execute(ctx context.Context, req *processMessage.Request) (*processMessage.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
