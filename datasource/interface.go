package datasource

import (
	"context"

	"weather-dashboard/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current conditions for a city
	GetWeather(ctx context.Context, city string, units models.UnitSystem) (models.CurrentConditions, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch daily forecast summaries
type ForecastSource interface {
	// FetchForecast fetches a forecast for a city, aggregated into at most
	// `days` daily summaries
	FetchForecast(ctx context.Context, city string, units models.UnitSystem, days int) ([]models.DailySummary, error)

	// Name returns the source's name
	Name() string
}
