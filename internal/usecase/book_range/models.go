package book_range

import (
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// Request модель запроса на бронирование в фиксированном окне
type Request struct {
	// Day календарный день (полночь в операционном поясе)
	Day time.Time
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	Booking domain.BookingResult
}
