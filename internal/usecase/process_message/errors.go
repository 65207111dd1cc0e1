package process_message

import "errors"

var (
	// ErrEmptyMessage возвращается при пустом сообщении
	ErrEmptyMessage = errors.New("process_message: empty message")

	// ErrCalendarUnavailable возвращается при ошибке календарного бэкенда.
	// В отличие от доменных неудач (нет слотов, время в прошлом), эта ошибка
	// поднимается до транспортного слоя и превращается в generic error response
	ErrCalendarUnavailable = errors.New("process_message: calendar backend unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("process_message: internal error")
)
