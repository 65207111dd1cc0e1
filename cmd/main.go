package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	healthHandler "github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/handlers/health"
	processMessageHandler "github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/handlers/process_message"
	upcomingEventsHandler "github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/handlers/upcoming_events"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/api/middleware"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/config"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
	eventsRepo "github.com/bhavanam2004/tailor-talk-booking-agent/internal/infra/storage/events"
	googleCalendarClient "github.com/bhavanam2004/tailor-talk-booking-agent/internal/integrations/googlecalendar"
	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/nlp/timeparse"
	bookDirectUC "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_direct"
	bookRangeUC "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/book_range"
	checkAvailabilityUC "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/check_availability"
	processMessageUC "github.com/bhavanam2004/tailor-talk-booking-agent/internal/usecase/process_message"
	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/logger"
	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/metrics"
	"github.com/bhavanam2004/tailor-talk-booking-agent/pkg/txmanager"
)

// calendarBackend общий интерфейс обоих календарных бэкендов
type calendarBackend interface {
	IsTimeSlotAvailable(ctx context.Context, start, end time.Time) (bool, error)
	BookSlot(ctx context.Context, summary string, start, end time.Time) (*domain.CalendarEvent, error)
	ListUpcomingEvents(ctx context.Context, max int) ([]domain.CalendarEvent, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TailorTalk booking agent...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var messageMetrics processMessageUC.MessageMetrics = metrics.Noop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		messageMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Операционный часовой пояс агента
	loc, err := time.LoadLocation(cfg.Agent.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Agent.Timezone, err)
	}
	log.Info("Agent timezone: %s", cfg.Agent.Timezone)

	// Инициализируем календарный бэкенд
	var calendar calendarBackend

	switch cfg.Calendar.Provider {
	case config.ProviderGoogle:
		gcal, err := googleCalendarClient.NewClient(
			context.Background(),
			cfg.Calendar.Google.CredentialsFile,
			cfg.Calendar.Google.CalendarID,
			cfg.Agent.Timezone,
			time.Duration(cfg.Calendar.Google.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		calendar = gcal
		log.Info("Calendar provider: google (calendar_id=%s)", cfg.Calendar.Google.CalendarID)

	case config.ProviderPostgres:
		// Подключаемся к базе данных
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		txMgr := txmanager.NewTransactionManager(db)
		calendar = eventsRepo.NewRepository(db, txMgr, log)
		log.Info("Calendar provider: postgres")

	default:
		log.Fatal("Unknown calendar provider: %s", cfg.Calendar.Provider)
	}

	// Парсер естественно-языковых дат
	parser := timeparse.NewParser(loc)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		calendar,
		cfg.Scheduling.WorkStartHour,
		cfg.Scheduling.WorkEndHour,
		cfg.Scheduling.MaxSuggestions,
		log,
	)
	bookRangeUseCase := bookRangeUC.NewUseCase(
		calendar,
		cfg.Scheduling.RangeStartHour,
		cfg.Scheduling.RangeEndHour,
		log,
	)
	bookDirectUseCase := bookDirectUC.NewUseCase(calendar, log)

	processMessageUseCase := processMessageUC.NewUseCase(
		parser,
		loc,
		checkAvailabilityUseCase,
		bookRangeUseCase,
		bookDirectUseCase,
		cfg.Scheduling.RangeStartHour,
		cfg.Scheduling.RangeEndHour,
		messageMetrics,
		log,
	)

	// Инициализируем handlers
	processMessage := processMessageHandler.NewHandler(processMessageUseCase, log)
	upcomingEvents := upcomingEventsHandler.NewHandler(calendar, log)
	healthCheck := healthHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", healthCheck.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Обработка сообщения пользователя
	api.HandleFunc("/messages", processMessage.Handle).Methods(http.MethodPost)

	// Предстоящие события календаря
	api.HandleFunc("/events/upcoming", upcomingEvents.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
