package upcoming_events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCalendar struct {
	events   []domain.CalendarEvent
	err      error
	gotLimit int
}

func (f *fakeCalendar) ListUpcomingEvents(ctx context.Context, max int) ([]domain.CalendarEvent, error) {
	f.gotLimit = max
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func doRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsEvents(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	start := time.Date(2025, 7, 11, 15, 0, 0, 0, loc)

	cal := &fakeCalendar{events: []domain.CalendarEvent{
		{
			ID:       "evt-1",
			Summary:  domain.MeetingSummary,
			Start:    start,
			End:      start.Add(domain.SlotDuration),
			HTMLLink: "https://calendar.example.com/evt-1",
		},
	}}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UpcomingEventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "evt-1", resp.Events[0].ID)
	assert.Equal(t, domain.MeetingSummary, resp.Events[0].Summary)
	assert.Equal(t, start.Format(time.RFC3339), resp.Events[0].Start)
}

func TestHandle_DefaultLimit(t *testing.T) {
	cal := &fakeCalendar{}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultLimit, cal.gotLimit)
}

func TestHandle_CustomLimit(t *testing.T) {
	cal := &fakeCalendar{}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming?limit=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, cal.gotLimit)
}

func TestHandle_LimitCapped(t *testing.T) {
	cal := &fakeCalendar{}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming?limit=1000")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxLimit, cal.gotLimit)
}

func TestHandle_InvalidLimit(t *testing.T) {
	cal := &fakeCalendar{}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming?limit=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, cal.gotLimit)
}

func TestHandle_CalendarError(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("backend down")}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_NoEvents_ReturnsEmptyList(t *testing.T) {
	cal := &fakeCalendar{}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(t, h, "/api/v1/events/upcoming")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UpcomingEventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Events)
	assert.Empty(t, resp.Events)
}
