package events

import (
	"context"

	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/txmanager"
)

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor

// TxManager интерфейс менеджера транзакций
// Бронирование выполняется в сериализуемой транзакции, чтобы исключить
// двойное бронирование одного слота при конкурентных запросах
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
