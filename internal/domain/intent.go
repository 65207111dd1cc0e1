package domain

// Intent represents the classified purpose of a user message
type Intent string

const (
	IntentCheckAvailability Intent = "check_availability"
	IntentBookRange         Intent = "book_range"
	IntentBookDirect        Intent = "book_direct"
)

// String возвращает строковое представление интента (для логов и метрик)
func (i Intent) String() string {
	return string(i)
}

// IsValid проверяет, что интент является одним из трёх поддерживаемых
func (i Intent) IsValid() bool {
	switch i {
	case IntentCheckAvailability, IntentBookRange, IntentBookDirect:
		return true
	default:
		return false
	}
}
