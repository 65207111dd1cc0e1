package book_direct

import (
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// Request модель запроса на бронирование конкретного времени
type Request struct {
	// Start начало слота; ожидается время, выровненное на :00 или :30
	Start time.Time
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	Booking domain.BookingResult
}
