package domain

import "time"

// SlotDuration фиксированная длительность бронируемого слота
const SlotDuration = 30 * time.Minute

// MeetingSummary заголовок события, создаваемого агентом
const MeetingSummary = "Meeting from TailorTalk Agent"

// DefaultTimezone операционный часовой пояс по умолчанию
// Весь парсинг и планирование привязаны к одному фиксированному поясу
const DefaultTimezone = "Asia/Kolkata"

// Default scheduling windows (overridable via config.toml)
const (
	// Рабочие часы для подбора свободных слотов: кандидаты каждый полный час
	// в [DefaultWorkStartHour, DefaultWorkEndHour)
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 18

	// Окно для book_range: часы [DefaultRangeStartHour, DefaultRangeEndHour),
	// минуты {0, 30}
	DefaultRangeStartHour = 15
	DefaultRangeEndHour   = 17

	// Максимум предложений в ответе на проверку доступности
	DefaultMaxSuggestions = 3
)

// Time format constants
const (
	ClockFormat    = "03:04 PM"            // hh:mm AM/PM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 03:04 PM" // YYYY-MM-DD hh:mm AM/PM
)
