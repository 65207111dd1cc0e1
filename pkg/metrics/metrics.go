package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	// HTTP-слой
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Агент: обработанные сообщения по интенту и исходу
	MessagesProcessedTotal *prometheus.CounterVec

	// Обращения к календарю по провайдеру и операции
	CalendarRequestsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		MessagesProcessedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "agent_messages_processed_total",
			Help:        "Processed user messages by resolved intent and outcome",
			ConstLabels: constLabels,
		}, []string{"intent", "outcome"}),

		CalendarRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_requests_total",
			Help:        "Calendar backend calls by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}
}

// ObserveMessage учитывает обработанное сообщение по интенту и исходу
func (m *Metrics) ObserveMessage(intent, outcome string) {
	m.MessagesProcessedTotal.WithLabelValues(intent, outcome).Inc()
}

// ObserveCalendarRequest учитывает обращение к календарному бэкенду
func (m *Metrics) ObserveCalendarRequest(operation, result string) {
	m.CalendarRequestsTotal.WithLabelValues(operation, result).Inc()
}

// Noop реализация метрик, ничего не делающая
// Используется, когда метрики выключены в конфигурации
type Noop struct{}

// ObserveMessage no-op
func (Noop) ObserveMessage(intent, outcome string) {}

// ObserveCalendarRequest no-op
func (Noop) ObserveCalendarRequest(operation, result string) {}
