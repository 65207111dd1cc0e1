package book_direct

import "errors"

var (
	// ErrSlotTaken возвращается, когда целевой слот уже занят
	ErrSlotTaken = errors.New("slot already taken")

	// ErrCalendarUnavailable возвращается при ошибке календарного бэкенда
	ErrCalendarUnavailable = errors.New("book_direct: calendar backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_direct: invalid input data")
)
