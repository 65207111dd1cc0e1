package check_availability

import "errors"

var (
	// ErrNoSlotsFound возвращается, когда в рабочих часах нет ни одного свободного слота
	ErrNoSlotsFound = errors.New("no free slots found")

	// ErrCalendarUnavailable возвращается при ошибке календарного бэкенда
	ErrCalendarUnavailable = errors.New("check_availability: calendar backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")
)
