package upcoming_events

import (
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// EventResponse HTTP модель события календаря
type EventResponse struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	HTMLLink string `json:"htmlLink,omitempty"`
}

// UpcomingEventsResponse HTTP response model
type UpcomingEventsResponse struct {
	Events []EventResponse `json:"events"`
}

func toEventResponse(ev domain.CalendarEvent) EventResponse {
	return EventResponse{
		ID:       ev.ID,
		Summary:  ev.Summary,
		Start:    ev.Start.Format(time.RFC3339),
		End:      ev.End.Format(time.RFC3339),
		HTMLLink: ev.HTMLLink,
	}
}
