package timeparse

import (
	"fmt"
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser распознает дату/время в свободном английском тексте.
// Обертка над olebedev/when с двумя гарантиями поверх него:
//   - результат всегда в операционном часовом поясе;
//   - prefer-future: голое время без указания дня, попавшее в прошлое,
//     переносится на следующий день
type Parser struct {
	loc *time.Location
	w   *when.Parser
}

// NewParser создает парсер, привязанный к операционному часовому поясу
func NewParser(loc *time.Location) *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Parser{
		loc: loc,
		w:   w,
	}
}

// dayReferenceRe детектирует явную привязку к дню в совпавшем фрагменте:
// относительные дни, дни недели, месяцы, календарные даты
var dayReferenceRe = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday|` +
	`monday|tuesday|wednesday|thursday|friday|saturday|sunday|` +
	`jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|june?|july?|` +
	`aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?|` +
	`week|month|year)\b|\d{1,2}[/.-]\d{1,2}|\d{4}`)

// Parse извлекает дату/время из текста относительно now.
// Возвращает ErrNoMatch, если в тексте нет распознаваемого выражения.
func (p *Parser) Parse(text string, now time.Time) (time.Time, error) {
	base := now.In(p.loc)

	result, err := p.w.Parse(text, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if result == nil {
		return time.Time{}, ErrNoMatch
	}

	resolved := result.Time.In(p.loc)

	// prefer-future: "3pm" в 18:00 означает завтрашние 15:00,
	// но "today at 3pm" остается в прошлом и отсекается дальше по пайплайну
	if resolved.Before(base) && !dayReferenceRe.MatchString(result.Text) {
		resolved = resolved.Add(24 * time.Hour)
	}

	return resolved, nil
}

// Location возвращает операционный часовой пояс парсера
func (p *Parser) Location() *time.Location {
	return p.loc
}

// TruncateToDay обнуляет компоненты времени, оставляя календарный день
// в часовом поясе исходного значения
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FloorToHalfHour округляет минуты вниз до получасовой границы (:00 или :30)
// и обнуляет секунды: бронирования начинаются только в :00 или :30
func FloorToHalfHour(t time.Time) time.Time {
	minute := 0
	if t.Minute() >= 30 {
		minute = 30
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}
