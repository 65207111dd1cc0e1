package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bhavanam2004/tailor-talk-booking-agent/internal/domain"
)

// Calendar provider names
const (
	ProviderGoogle   = "google"
	ProviderPostgres = "postgres"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Agent      AgentConfig      `toml:"agent"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Database   DatabaseConfig   `toml:"database"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AgentConfig настройки ядра агента
type AgentConfig struct {
	// Операционный часовой пояс: все распознанные времена приводятся к нему
	Timezone string `toml:"timezone"`
}

// SchedulingConfig окна планирования
// Дефолты соответствуют исходному продукту: рабочие часы 9-18,
// окно book_range 15-17, максимум 3 предложения
type SchedulingConfig struct {
	WorkStartHour  int `toml:"work_start_hour"`
	WorkEndHour    int `toml:"work_end_hour"`
	RangeStartHour int `toml:"range_start_hour"`
	RangeEndHour   int `toml:"range_end_hour"`
	MaxSuggestions int `toml:"max_suggestions"`
}

// CalendarConfig выбор и настройка календарного бэкенда
type CalendarConfig struct {
	// Provider: "google" или "postgres"
	Provider string               `toml:"provider"`
	Google   GoogleCalendarConfig `toml:"google"`
}

// GoogleCalendarConfig настройки Google Calendar
type GoogleCalendarConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	CalendarID      string `toml:"calendar_id"`
	Timeout         int    `toml:"timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
// Используется только при calendar.provider = "postgres"
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "tailortalk-agent",
		},
		Agent: AgentConfig{
			Timezone: domain.DefaultTimezone,
		},
		Scheduling: SchedulingConfig{
			WorkStartHour:  domain.DefaultWorkStartHour,
			WorkEndHour:    domain.DefaultWorkEndHour,
			RangeStartHour: domain.DefaultRangeStartHour,
			RangeEndHour:   domain.DefaultRangeEndHour,
			MaxSuggestions: domain.DefaultMaxSuggestions,
		},
		Calendar: CalendarConfig{
			Provider: ProviderGoogle,
			Google: GoogleCalendarConfig{
				CalendarID: "primary",
				Timeout:    10,
			},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Agent.Timezone); err != nil {
		return fmt.Errorf("config: invalid agent.timezone %q: %w", c.Agent.Timezone, err)
	}

	s := c.Scheduling
	if s.WorkStartHour < 0 || s.WorkEndHour > 24 || s.WorkStartHour >= s.WorkEndHour {
		return fmt.Errorf("config: invalid working hours [%d, %d)", s.WorkStartHour, s.WorkEndHour)
	}
	if s.RangeStartHour < s.WorkStartHour || s.RangeEndHour > s.WorkEndHour || s.RangeStartHour >= s.RangeEndHour {
		return fmt.Errorf("config: range window [%d, %d) must lie within working hours [%d, %d)",
			s.RangeStartHour, s.RangeEndHour, s.WorkStartHour, s.WorkEndHour)
	}
	if s.MaxSuggestions <= 0 {
		return fmt.Errorf("config: max_suggestions must be positive, got %d", s.MaxSuggestions)
	}

	switch c.Calendar.Provider {
	case ProviderGoogle, ProviderPostgres:
	default:
		return fmt.Errorf("config: unknown calendar.provider %q", c.Calendar.Provider)
	}

	return nil
}
