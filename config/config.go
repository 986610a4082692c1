// Package config loads the service configuration: an optional YAML file for
// server and dashboard settings, with environment variables on top for the
// values that differ per deployment (API key, port, tracing endpoint).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no OpenWeatherMap credential is
// configured. It is fatal at startup: no fetch is ever attempted without it.
var ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key (set OPENWEATHER_API_KEY)")

// ServerConfig holds the HTTP serving settings.
type ServerConfig struct {
	Port           int `yaml:"port"`
	RequestTimeout int `yaml:"request_timeout_seconds"`
}

// ProviderConfig holds the upstream weather API settings.
type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

// DashboardConfig holds display defaults.
type DashboardConfig struct {
	DefaultUnits    string `yaml:"default_units"`
	MaxForecastDays int    `yaml:"max_forecast_days"`
}

// TracingConfig holds the optional zipkin exporter settings. Tracing is
// disabled when the endpoint is empty.
type TracingConfig struct {
	ZipkinEndpoint string `yaml:"zipkin_endpoint"`
}

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Provider  ProviderConfig  `yaml:"provider"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			RequestTimeout: 30,
		},
		Dashboard: DashboardConfig{
			DefaultUnits:    "metric",
			MaxForecastDays: 5,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variable overrides, then validates it. A missing file is only
// an error when a path was explicitly given.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	if key := v.GetString("OPENWEATHER_API_KEY"); key != "" {
		cfg.Provider.APIKey = key
	}
	if port := v.GetInt("PORT"); port != 0 {
		cfg.Server.Port = port
	}
	if endpoint := v.GetString("ZIPKIN_ENDPOINT"); endpoint != "" {
		cfg.Tracing.ZipkinEndpoint = endpoint
	}

	if cfg.Provider.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Dashboard.MaxForecastDays < 1 {
		return nil, fmt.Errorf("max_forecast_days must be at least 1, got %d", cfg.Dashboard.MaxForecastDays)
	}

	return cfg, nil
}
