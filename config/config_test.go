package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"weather-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	t.Setenv("PORT", "")
	t.Setenv("ZIPKIN_ENDPOINT", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Provider.APIKey)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "metric", cfg.Dashboard.DefaultUnits)
	assert.Equal(t, 5, cfg.Dashboard.MaxForecastDays)
}

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := config.Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
server:
  port: 8000
  request_timeout_seconds: 15
dashboard:
  default_units: imperial
  max_forecast_days: 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port, "PORT env var overrides the file")
	assert.Equal(t, 15, cfg.Server.RequestTimeout)
	assert.Equal(t, "imperial", cfg.Dashboard.DefaultUnits)
	assert.Equal(t, 3, cfg.Dashboard.MaxForecastDays)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidMaxForecastDays(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  max_forecast_days: 0\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
