package process_message

import "github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"

// Request модель запроса на обработку сообщения пользователя
type Request struct {
	// Message последняя реплика пользователя, свободный текст
	Message string
}

// Response модель ответа агента
type Response struct {
	// Intent распознанный интент сообщения
	Intent domain.Intent
	// Reply готовый к показу пользователю ответ
	Reply string
}
