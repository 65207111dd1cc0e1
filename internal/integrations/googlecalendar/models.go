package googlecalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// toDomainEvent конвертирует событие calendar/v3 в доменную модель
// Поддерживает и события со временем (dateTime), и all-day события (date)
func toDomainEvent(ev *calendar.Event, loc *time.Location) (*domain.CalendarEvent, error) {
	start, err := parseEventTime(ev.Start, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid event start: %v", err)
	}

	end, err := parseEventTime(ev.End, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid event end: %v", err)
	}

	return &domain.CalendarEvent{
		ID:       ev.Id,
		Summary:  ev.Summary,
		Start:    start,
		End:      end,
		HTMLLink: ev.HtmlLink,
	}, nil
}

func parseEventTime(edt *calendar.EventDateTime, loc *time.Location) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing date/time")
	}

	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(loc), nil
	}

	// all-day событие: только дата, интерпретируем в операционном поясе
	if edt.Date != "" {
		t, err := time.ParseInLocation(domain.DateFormat, edt.Date, loc)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("missing date/time")
}
