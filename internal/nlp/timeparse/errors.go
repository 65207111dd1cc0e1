package timeparse

import "errors"

var (
	// ErrNoMatch возвращается, когда в тексте нет распознаваемого выражения даты/времени
	ErrNoMatch = errors.New("timeparse: no date or time expression found")

	// ErrParse возвращается при внутренней ошибке разбора
	ErrParse = errors.New("timeparse: failed to parse expression")
)
