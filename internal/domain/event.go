package domain

import "time"

// CalendarEvent модель события календаря, общая для всех провайдеров
// (Google Calendar и локальное хранилище приводят свои модели к ней)
type CalendarEvent struct {
	ID       string
	Summary  string
	Start    time.Time
	End      time.Time
	HTMLLink string
}

// BookingResult represents a confirmed booking: the slot that was created
// and the external reference link reported by the calendar backend
type BookingResult struct {
	Slot     TimeSlot
	HTMLLink string
}
