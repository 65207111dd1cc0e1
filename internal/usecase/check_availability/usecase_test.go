package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeCalendar календарь в памяти: занятость по часу начала слота
type fakeCalendar struct {
	busyHours map[int]bool
	probeErr  error
	probes    []time.Time
}

func (f *fakeCalendar) IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	f.probes = append(f.probes, start)
	if f.probeErr != nil {
		return false, f.probeErr
	}
	return !f.busyHours[start.Hour()], nil
}

func testDay(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2025, 7, 11, 0, 0, 0, 0, loc)
}

func TestExecute_ReturnsFirstThreeFreeSlots(t *testing.T) {
	cal := &fakeCalendar{busyHours: map[int]bool{}}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM"}, resp.Times)
	// после трех найденных слотов сканирование прекращается
	assert.Len(t, cal.probes, 3)
}

func TestExecute_SkipsBusyHours(t *testing.T) {
	cal := &fakeCalendar{busyHours: map[int]bool{9: true, 10: true, 12: true}}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "01:00 PM", "02:00 PM"}, resp.Times)
}

func TestExecute_ProbesArePerHourSlots(t *testing.T) {
	cal := &fakeCalendar{busyHours: map[int]bool{}}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.NoError(t, err)
	day := testDay(t)
	assert.Equal(t, time.Date(2025, 7, 11, 9, 0, 0, 0, day.Location()), cal.probes[0])
	assert.Equal(t, time.Date(2025, 7, 11, 10, 0, 0, 0, day.Location()), cal.probes[1])
}

func TestExecute_AllBusy_ReturnsNoSlotsFound(t *testing.T) {
	busy := map[int]bool{}
	for hour := 9; hour < 18; hour++ {
		busy[hour] = true
	}
	cal := &fakeCalendar{busyHours: busy}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.ErrorIs(t, err, ErrNoSlotsFound)
	assert.Nil(t, resp)
	// все девять кандидатов проверены
	assert.Len(t, cal.probes, 9)
}

func TestExecute_FewerFreeThanMax_ReturnsWhatIsThere(t *testing.T) {
	busy := map[int]bool{}
	for hour := 9; hour < 18; hour++ {
		busy[hour] = true
	}
	delete(busy, 17)
	cal := &fakeCalendar{busyHours: busy}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.NoError(t, err)
	assert.Equal(t, []string{"05:00 PM"}, resp.Times)
}

func TestExecute_CalendarError_ReturnsCalendarUnavailable(t *testing.T) {
	cal := &fakeCalendar{probeErr: errors.New("backend down")}
	uc := NewUseCase(cal, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Nil(t, resp)
}

func TestExecute_ZeroDay_ReturnsInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, 9, 18, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestExecute_SlotsAreHalfHour(t *testing.T) {
	var gotEnd time.Time
	cal := &probeEndCalendar{end: &gotEnd}
	uc := NewUseCase(cal, 9, 18, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Day: testDay(t)})

	require.NoError(t, err)
	day := testDay(t)
	assert.Equal(t, time.Date(2025, 7, 11, 9, 30, 0, 0, day.Location()), gotEnd)
}

type probeEndCalendar struct {
	end *time.Time
}

func (c *probeEndCalendar) IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	*c.end = end
	return true, nil
}
