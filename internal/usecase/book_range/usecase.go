package book_range

import (
	"context"
	"fmt"
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// UseCase use case бронирования в фиксированном окне дня
// Сканирует кандидатов в хронологическом порядке (час по возрастанию,
// затем минуты 0 и 30) и бронирует первый свободный слот — first-fit
type UseCase struct {
	calendar       CalendarClient
	rangeStartHour int
	rangeEndHour   int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// Окно кандидатов: часы [rangeStartHour, rangeEndHour), минуты {0, 30}
func NewUseCase(calendar CalendarClient, rangeStartHour, rangeEndHour int, logger Logger) *UseCase {
	return &UseCase{
		calendar:       calendar,
		rangeStartHour: rangeStartHour,
		rangeEndHour:   rangeEndHour,
		logger:         logger,
	}
}

// Execute выполняет бронирование первого свободного слота в окне
// За один вызов делается не больше одной попытки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	uc.logger.Info("BookRange: day=%s, window=[%d, %d)",
		req.Day.Format(domain.DateFormat), uc.rangeStartHour, uc.rangeEndHour)

	day := req.Day

	for hour := uc.rangeStartHour; hour < uc.rangeEndHour; hour++ {
		for _, minute := range []int{0, 30} {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
			slot := domain.NewTimeSlot(start)

			free, err := uc.calendar.IsTimeSlotAvailable(ctx, slot.Start, slot.End)
			if err != nil {
				uc.logger.Error("BookRange: probe failed for %s: %v", start.Format(time.RFC3339), err)
				return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
			}
			if !free {
				continue
			}

			event, err := uc.calendar.BookSlot(ctx, domain.MeetingSummary, slot.Start, slot.End)
			if err != nil {
				uc.logger.Error("BookRange: failed to book %s: %v", start.Format(time.RFC3339), err)
				return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
			}

			uc.logger.Info("BookRange: booked %s, link=%s", start.Format(time.RFC3339), event.HTMLLink)

			return &Response{
				Booking: domain.BookingResult{
					Slot:     slot,
					HTMLLink: event.HTMLLink,
				},
			}, nil
		}
	}

	uc.logger.Info("BookRange: no free slots in window on %s", req.Day.Format(domain.DateFormat))

	return nil, ErrNoRangeSlot
}
