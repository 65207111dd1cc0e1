package book_direct

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
	eventsRepo "github.com/bhavanam2004/tailor-talk-booking-agent/internal/infra/storage/events"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCalendar struct {
	free     bool
	probeErr error
	bookErr  error
	probed   int
	booked   int
}

func (f *fakeCalendar) IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	f.probed++
	if f.probeErr != nil {
		return false, f.probeErr
	}
	return f.free, nil
}

func (f *fakeCalendar) BookSlot(ctx context.Context, summary string, start, end time.Time) (*domain.CalendarEvent, error) {
	f.booked++
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &domain.CalendarEvent{
		ID:       "evt-1",
		Summary:  summary,
		Start:    start,
		End:      end,
		HTMLLink: "https://calendar.example.com/evt-1",
	}, nil
}

func testStart(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2025, 7, 11, 15, 0, 0, 0, loc)
}

func TestExecute_BooksFreeSlot(t *testing.T) {
	cal := &fakeCalendar{free: true}
	uc := NewUseCase(cal, nopLogger{})
	start := testStart(t)

	resp, err := uc.Execute(context.Background(), &Request{Start: start})

	require.NoError(t, err)
	assert.Equal(t, start, resp.Booking.Slot.Start)
	assert.Equal(t, start.Add(domain.SlotDuration), resp.Booking.Slot.End)
	assert.Equal(t, "https://calendar.example.com/evt-1", resp.Booking.HTMLLink)
	assert.Equal(t, 1, cal.booked)
}

func TestExecute_SlotTaken_NoBookingAttempt(t *testing.T) {
	cal := &fakeCalendar{free: false}
	uc := NewUseCase(cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: testStart(t)})

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)
	assert.Equal(t, 0, cal.booked)
}

func TestExecute_ConcurrentConflict_ReturnsSlotTaken(t *testing.T) {
	// слот был свободен на проверке, но занят до вставки
	cal := &fakeCalendar{free: true, bookErr: eventsRepo.ErrSlotNotAvailable}
	uc := NewUseCase(cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: testStart(t)})

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)
}

func TestExecute_ProbeError_ReturnsCalendarUnavailable(t *testing.T) {
	cal := &fakeCalendar{probeErr: errors.New("backend down")}
	uc := NewUseCase(cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: testStart(t)})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Nil(t, resp)
	assert.Equal(t, 0, cal.booked)
}

func TestExecute_BookError_ReturnsCalendarUnavailable(t *testing.T) {
	cal := &fakeCalendar{free: true, bookErr: errors.New("insert failed")}
	uc := NewUseCase(cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: testStart(t)})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Nil(t, resp)
}

func TestExecute_ZeroStart_ReturnsInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}
