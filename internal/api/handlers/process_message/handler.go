package process_message

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/handlers"
	processMessage "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/process_message"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgEmptyMessage        = "message must not be empty"
	msgCalendarUnavailable = "calendar backend is temporarily unavailable"
)

type Handler struct {
	useCase ProcessMessageUseCase
	logger  Logger
}

func NewHandler(useCase ProcessMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/messages
// Доменные неудачи (непонятное время, нет слотов, слот занят) возвращаются
// со статусом 200 внутри текста ответа; 5xx означает сбой системы, а не отказ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProcessMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.logger.Warn("POST /messages - Empty message")
		handlers.RespondBadRequest(w, msgEmptyMessage)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &processMessage.Request{Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, processMessage.ErrEmptyMessage):
			h.logger.Warn("POST /messages - Empty message")
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, processMessage.ErrCalendarUnavailable):
			h.logger.Error("POST /messages - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /messages - Failed to process message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /messages - Processed successfully: intent=%s", result.Intent)
	handlers.RespondJSON(w, http.StatusOK, ProcessMessageResponse{Response: result.Reply})
}
