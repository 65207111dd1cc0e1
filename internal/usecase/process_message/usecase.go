package process_message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/nlp/normalize"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/nlp/timeparse"
	bookDirect "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_direct"
	bookRange "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_range"
	checkAvailability "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/check_availability"
)

// Тексты ответов пользователю
const (
	msgCannotUnderstandDay   = "❌ I couldn't understand the day."
	msgCannotUnderstandRange = "❌ Couldn't understand time range."
	msgCannotUnderstandTime  = "❌ Couldn't understand time."
	msgTimeInPast            = "❌ Time is in the past."
	msgNoFreeSlots           = "⛔ No free slots found."
	msgSlotTaken             = "⛔ Already booked. Try another time."
)

// Исходы обработки для метрик
const (
	outcomeOK            = "ok"
	outcomeUnresolved    = "unresolved"
	outcomePastTime      = "past_time"
	outcomeNoSlots       = "no_slots"
	outcomeSlotTaken     = "slot_taken"
	outcomeCalendarError = "calendar_error"
	outcomeInternalError = "internal_error"
)

// UseCase оркестратор обработки одного сообщения:
// нормализация -> классификация интента -> разрешение времени -> диспетчеризация
// Состояние живет только в рамках одного вызова Execute
type UseCase struct {
	parser         TimeParser
	loc            *time.Location
	availabilityUC CheckAvailabilityUseCase
	rangeUC        BookRangeUseCase
	directUC       BookDirectUseCase
	rangeStartHour int
	rangeEndHour   int
	timeProvider   TimeProvider
	metrics        MessageMetrics
	logger         Logger
}

// NewUseCase создает новый экземпляр оркестратора
func NewUseCase(
	parser TimeParser,
	loc *time.Location,
	availabilityUC CheckAvailabilityUseCase,
	rangeUC BookRangeUseCase,
	directUC BookDirectUseCase,
	rangeStartHour int,
	rangeEndHour int,
	metrics MessageMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		parser:         parser,
		loc:            loc,
		availabilityUC: availabilityUC,
		rangeUC:        rangeUC,
		directUC:       directUC,
		rangeStartHour: rangeStartHour,
		rangeEndHour:   rangeEndHour,
		timeProvider:   &RealTimeProvider{},
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute обрабатывает одно сообщение пользователя и возвращает готовый ответ.
// Все доменные неудачи (непонятное время, занятый слот, нет свободных слотов)
// превращаются в текст ответа; ошибкой завершается только недоступность
// календаря или внутренний сбой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	// 1. Текущее время в операционном поясе
	now := uc.timeProvider.Now().In(uc.loc)

	// 2. Нормализация нечетких временных слов
	normalized := normalize.Normalize(strings.ToLower(req.Message))

	// 3. Классификация интента по ключевым словам (первое совпадение побеждает)
	intent := classifyIntent(normalized)

	uc.logger.Info("ProcessMessage: intent=%s, normalized=%q", intent, normalized)

	// 4. Разрешение времени и диспетчеризация по интенту
	var (
		reply   string
		outcome string
		err     error
	)

	switch intent {
	case domain.IntentCheckAvailability:
		reply, outcome, err = uc.handleAvailability(ctx, normalized, now)
	case domain.IntentBookRange:
		reply, outcome, err = uc.handleRange(ctx, normalized, now)
	default:
		reply, outcome, err = uc.handleDirect(ctx, normalized, now)
	}

	uc.metrics.ObserveMessage(intent.String(), outcome)

	if err != nil {
		return nil, err
	}

	return &Response{
		Intent: intent,
		Reply:  reply,
	}, nil
}

// classifyIntent классифицирует сообщение по фиксированным триггерам.
// Порядок проверок важен: "is there a free time between 3 and 5" — это
// проверка доступности, а не бронирование в диапазоне.
func classifyIntent(text string) domain.Intent {
	if strings.Contains(text, "free time") || strings.Contains(text, "available") {
		return domain.IntentCheckAvailability
	}
	if strings.Contains(text, "between") {
		return domain.IntentBookRange
	}
	return domain.IntentBookDirect
}

// handleAvailability обрабатывает интент check_availability
func (uc *UseCase) handleAvailability(ctx context.Context, text string, now time.Time) (string, string, error) {
	parsed, err := uc.parser.Parse(text, now)
	if err != nil {
		uc.logger.Warn("ProcessMessage: failed to resolve day: %v", err)
		return msgCannotUnderstandDay, outcomeUnresolved, nil
	}

	// для проверки доступности важен только день
	day := timeparse.TruncateToDay(parsed)

	resp, err := uc.availabilityUC.Execute(ctx, &checkAvailability.Request{Day: day})
	switch {
	case errors.Is(err, checkAvailability.ErrNoSlotsFound):
		return msgNoFreeSlots, outcomeNoSlots, nil
	case errors.Is(err, checkAvailability.ErrCalendarUnavailable):
		return "", outcomeCalendarError, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	case err != nil:
		return "", outcomeInternalError, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	reply := fmt.Sprintf("✅ You're available at: %s...", strings.Join(resp.Times, ", "))
	return reply, outcomeOK, nil
}

// handleRange обрабатывает интент book_range
func (uc *UseCase) handleRange(ctx context.Context, text string, now time.Time) (string, string, error) {
	parsed, err := uc.parser.Parse(text, now)
	if err != nil {
		// fallback: "next week" без распознаваемой даты означает ближайший понедельник
		fallback, ok := nextWeekFallback(text, now)
		if !ok {
			uc.logger.Warn("ProcessMessage: failed to resolve range day: %v", err)
			return msgCannotUnderstandRange, outcomeUnresolved, nil
		}
		parsed = fallback
	}

	day := timeparse.TruncateToDay(parsed)

	resp, err := uc.rangeUC.Execute(ctx, &bookRange.Request{Day: day})
	switch {
	case errors.Is(err, bookRange.ErrNoRangeSlot):
		return uc.noRangeSlotMessage(), outcomeNoSlots, nil
	case errors.Is(err, bookRange.ErrCalendarUnavailable):
		return "", outcomeCalendarError, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	case err != nil:
		return "", outcomeInternalError, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booked := resp.Booking
	reply := fmt.Sprintf("✅ Booked: %s\n🔗 %s", booked.Slot.Start.Format(domain.ClockFormat), booked.HTMLLink)
	return reply, outcomeOK, nil
}

// handleDirect обрабатывает интент book_direct
func (uc *UseCase) handleDirect(ctx context.Context, text string, now time.Time) (string, string, error) {
	parsed, err := uc.parser.Parse(text, now)
	if err != nil {
		uc.logger.Warn("ProcessMessage: failed to resolve time: %v", err)
		return msgCannotUnderstandTime, outcomeUnresolved, nil
	}

	// время в прошлом отсекается до любого обращения к календарю
	if parsed.Before(now) {
		return msgTimeInPast, outcomePastTime, nil
	}

	// бронирования начинаются только в :00 или :30
	start := timeparse.FloorToHalfHour(parsed)

	resp, err := uc.directUC.Execute(ctx, &bookDirect.Request{Start: start})
	switch {
	case errors.Is(err, bookDirect.ErrSlotTaken):
		return msgSlotTaken, outcomeSlotTaken, nil
	case errors.Is(err, bookDirect.ErrCalendarUnavailable):
		return "", outcomeCalendarError, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	case err != nil:
		return "", outcomeInternalError, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booked := resp.Booking
	reply := fmt.Sprintf("✅ Meeting booked!\n📅 %s\n🔗 %s",
		booked.Slot.Start.Format(domain.DateTimeFormat), booked.HTMLLink)
	return reply, outcomeOK, nil
}

// nextWeekFallback вычисляет ближайший понедельник: now + (7 - weekday) дней,
// где weekday считается с понедельника (понедельник = 0)
func nextWeekFallback(text string, now time.Time) (time.Time, bool) {
	if !strings.Contains(text, "next week") {
		return time.Time{}, false
	}
	weekday := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, 7-weekday), true
}

// noRangeSlotMessage формирует сообщение о занятом окне из настроенных границ
// С дефолтной конфигурацией: "⛔ No free slots between 3–5 PM."
func (uc *UseCase) noRangeSlotMessage() string {
	return fmt.Sprintf("⛔ No free slots between %d–%d PM.",
		hour12(uc.rangeStartHour), hour12(uc.rangeEndHour))
}

// hour12 переводит час из 24-часового формата в 12-часовой
func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}
