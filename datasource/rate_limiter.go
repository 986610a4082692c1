package datasource

import (
	"context"
	"fmt"

	"weather-dashboard/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a provider that implements both interfaces with
// per-endpoint rate limiting, so a burst of dashboard loads cannot blow
// through the upstream API quota.
type RateLimitedProvider struct {
	provider        WeatherProvider
	forecastSrc     ForecastSource
	weatherLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider creates a rate limited wrapper around a provider.
// weatherRPS and forecastRPS are the maximum requests per second for the
// current-conditions and forecast endpoints (fractional values allow less
// than one request per second); burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider WeatherProvider, forecastSrc ForecastSource, weatherRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		forecastSrc:     forecastSrc,
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches current conditions, respecting rate limits
func (r *RateLimitedProvider) GetWeather(ctx context.Context, city string, units models.UnitSystem) (models.CurrentConditions, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, city, units)
}

// FetchForecast fetches daily summaries, respecting rate limits
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string, units models.UnitSystem, days int) ([]models.DailySummary, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.forecastSrc.FetchForecast(ctx, city, units, days)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that the rate limited wrapper implements the required interfaces
var (
	_ WeatherProvider = (*RateLimitedProvider)(nil)
	_ ForecastSource  = (*RateLimitedProvider)(nil)
)
