package book_direct

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
	eventsRepo "github.com/bhavanam2004/tailor-talk-booking-agent/internal/infra/storage/events"
)

// UseCase use case бронирования конкретного времени
type UseCase struct {
	calendar CalendarClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		logger:   logger,
	}
}

// Execute бронирует 30-минутный слот, начинающийся в req.Start
// Слот бронируется, только если календарь подтверждает, что он свободен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Start.IsZero() {
		return nil, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	slot := domain.NewTimeSlot(req.Start)

	uc.logger.Info("BookDirect: slot=[%s, %s)",
		slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))

	free, err := uc.calendar.IsTimeSlotAvailable(ctx, slot.Start, slot.End)
	if err != nil {
		uc.logger.Error("BookDirect: probe failed for %s: %v", slot.Start.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	if !free {
		uc.logger.Info("BookDirect: slot %s already taken", slot.Start.Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	event, err := uc.calendar.BookSlot(ctx, domain.MeetingSummary, slot.Start, slot.End)
	if err != nil {
		// Гонка с конкурентным бронированием в локальном хранилище:
		// между проверкой и вставкой слот успели занять
		if errors.Is(err, eventsRepo.ErrSlotNotAvailable) {
			uc.logger.Warn("BookDirect: slot %s taken concurrently", slot.Start.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		uc.logger.Error("BookDirect: failed to book %s: %v", slot.Start.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("BookDirect: booked %s, link=%s", slot.Start.Format(time.RFC3339), event.HTMLLink)

	return &Response{
		Booking: domain.BookingResult{
			Slot:     slot,
			HTMLLink: event.HTMLLink,
		},
	}, nil
}
