package upcoming_events

import (
	"net/http"
	"strconv"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/handlers"
)

const (
	defaultLimit = 10
	maxLimit     = 50

	msgInvalidLimit = "invalid limit parameter"
)

type Handler struct {
	calendar CalendarClient
	logger   Logger
}

func NewHandler(calendar CalendarClient, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/events/upcoming
// Query params: limit (optional, default 10, max 50)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /events/upcoming - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
		if limit > maxLimit {
			limit = maxLimit
		}
	}

	events, err := h.calendar.ListUpcomingEvents(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /events/upcoming - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := UpcomingEventsResponse{Events: make([]EventResponse, 0, len(events))}
	for _, ev := range events {
		response.Events = append(response.Events, toEventResponse(ev))
	}

	h.logger.Info("GET /events/upcoming - Returned %d events", len(response.Events))
	handlers.RespondJSON(w, http.StatusOK, response)
}
