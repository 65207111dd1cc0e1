package googlecalendar

import "errors"

var (
	// ErrUnavailable возвращается, когда Google Calendar недоступен
	// (сетевая ошибка, квота, отказ в авторизации)
	ErrUnavailable = errors.New("googlecalendar client: calendar backend unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
