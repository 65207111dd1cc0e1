package check_availability

import "time"

// Request модель запроса на проверку доступности
type Request struct {
	// Day календарный день (полночь в операционном поясе), время внутри дня игнорируется
	Day time.Time
}

// Response модель ответа со свободными временами
type Response struct {
	Day time.Time
	// Times первые свободные времена начала в хронологическом порядке,
	// отформатированные как "03:04 PM"
	Times []string
}
