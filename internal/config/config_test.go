package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[logs]
file = "logs/agent.log"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Kolkata", cfg.Agent.Timezone)
	assert.Equal(t, 9, cfg.Scheduling.WorkStartHour)
	assert.Equal(t, 18, cfg.Scheduling.WorkEndHour)
	assert.Equal(t, 15, cfg.Scheduling.RangeStartHour)
	assert.Equal(t, 17, cfg.Scheduling.RangeEndHour)
	assert.Equal(t, 3, cfg.Scheduling.MaxSuggestions)
	assert.Equal(t, ProviderGoogle, cfg.Calendar.Provider)
	assert.Equal(t, "primary", cfg.Calendar.Google.CalendarID)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[agent]
timezone = "Europe/Moscow"

[scheduling]
work_start_hour = 10
work_end_hour = 19
range_start_hour = 12
range_end_hour = 14
max_suggestions = 5

[calendar]
provider = "postgres"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "Europe/Moscow", cfg.Agent.Timezone)
	assert.Equal(t, 5, cfg.Scheduling.MaxSuggestions)
	assert.Equal(t, ProviderPostgres, cfg.Calendar.Provider)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := writeConfig(t, `
[agent]
timezone = "Mars/Olympus"
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestLoad_InvalidWorkingHours(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
work_start_hour = 18
work_end_hour = 9
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "working hours")
}

func TestLoad_RangeOutsideWorkingHours(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
range_start_hour = 19
range_end_hour = 21
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "range window")
}

func TestLoad_UnknownProvider(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "outlook"
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar.provider")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "tailortalk",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=tailortalk sslmode=disable",
		d.DSN())
}
