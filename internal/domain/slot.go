package domain

import "time"

// TimeSlot represents a half-open booking interval [Start, End)
// Both endpoints always carry the operational timezone
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot создает слот фиксированной длительности от указанного начала
func NewTimeSlot(start time.Time) TimeSlot {
	return TimeSlot{
		Start: start,
		End:   start.Add(SlotDuration),
	}
}

// Overlaps returns true if the slot really intersects the [start, end) interval.
// Touching boundaries (one interval ends exactly where the other begins) do not count.
func (s TimeSlot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}

// Duration возвращает длительность слота
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
