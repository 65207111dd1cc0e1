package book_range

import "errors"

var (
	// ErrNoRangeSlot возвращается, когда в окне бронирования нет ни одного свободного слота
	ErrNoRangeSlot = errors.New("no free slots in booking range")

	// ErrCalendarUnavailable возвращается при ошибке календарного бэкенда
	ErrCalendarUnavailable = errors.New("book_range: calendar backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_range: invalid input data")
)
