package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/dashboard"
	"weather-dashboard/datasource"
	"weather-dashboard/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

// Server exposes the dashboard API over HTTP. Every request triggers fresh
// one-shot fetches against the upstream provider; nothing is cached or
// retried, and results are discarded after the response is written.
type Server struct {
	weather      datasource.WeatherProvider
	forecasts    datasource.ForecastSource
	tracer       trace.Tracer
	defaultUnits models.UnitSystem
	maxDays      int
	timeout      time.Duration
}

// NewServer creates a new API server over the given provider.
func NewServer(weather datasource.WeatherProvider, forecasts datasource.ForecastSource, tracer trace.Tracer, defaultUnits models.UnitSystem, maxDays int, timeout time.Duration) *Server {
	return &Server{
		weather:      weather,
		forecasts:    forecasts,
		tracer:       tracer,
		defaultUnits: defaultUnits,
		maxDays:      maxDays,
		timeout:      timeout,
	}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/api/weather", s.handleGetWeather)
	r.Get("/api/forecast", s.handleGetForecast)
	r.Get("/api/dashboard", s.handleGetDashboard)
	r.Get("/api/health", s.handleHealthCheck)

	return r
}

// handleGetWeather handles requests for current conditions by city
func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	city, units, ok := s.queryParams(w, r)
	if !ok {
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "fetch-current")
	defer span.End()

	current, err := s.weather.GetWeather(ctx, city, units)
	if err != nil {
		s.writeFetchError(w, city, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"city":    city,
		"units":   units,
		"current": current,
	})
}

// handleGetForecast handles requests for daily forecast summaries by city
func (s *Server) handleGetForecast(w http.ResponseWriter, r *http.Request) {
	city, units, ok := s.queryParams(w, r)
	if !ok {
		return
	}
	days := s.daysParam(r)

	ctx, span := s.tracer.Start(r.Context(), "fetch-forecast")
	defer span.End()

	forecast, err := s.forecasts.FetchForecast(ctx, city, units, days)
	if err != nil {
		s.writeFetchError(w, city, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"city":     city,
		"units":    units,
		"days":     days,
		"forecast": forecast,
	})
}

// handleGetDashboard returns the combined view model for one city. The two
// upstream fetches are independent and share no mutable data, so they run
// concurrently to halve the worst-case latency.
func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	city, units, ok := s.queryParams(w, r)
	if !ok {
		return
	}
	days := s.daysParam(r)

	ctx, span := s.tracer.Start(r.Context(), "fetch-dashboard")
	defer span.End()

	var (
		wg          sync.WaitGroup
		current     models.CurrentConditions
		forecast    []models.DailySummary
		currentErr  error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fetchCtx, fetchSpan := s.tracer.Start(ctx, "fetch-current")
		defer fetchSpan.End()
		current, currentErr = s.weather.GetWeather(fetchCtx, city, units)
	}()
	go func() {
		defer wg.Done()
		fetchCtx, fetchSpan := s.tracer.Start(ctx, "fetch-forecast")
		defer fetchSpan.End()
		forecast, forecastErr = s.forecasts.FetchForecast(fetchCtx, city, units, days)
	}()
	wg.Wait()

	// Never render partial results: either fetch failing fails the request.
	if currentErr != nil {
		s.writeFetchError(w, city, currentErr)
		return
	}
	if forecastErr != nil {
		s.writeFetchError(w, city, forecastErr)
		return
	}

	writeJSON(w, http.StatusOK, dashboard.NewView(current, forecast, units))
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"provider":  s.weather.Name(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// queryParams extracts and validates the city and units query parameters,
// writing the error response itself when they are invalid.
func (s *Server) queryParams(w http.ResponseWriter, r *http.Request) (string, models.UnitSystem, bool) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "city not specified",
		})
		return "", "", false
	}

	rawUnits := r.URL.Query().Get("units")
	if rawUnits == "" {
		return city, s.defaultUnits, true
	}
	units, err := models.ParseUnitSystem(rawUnits)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return "", "", false
	}
	return city, units, true
}

// daysParam extracts the requested day count, clamped to [1, maxDays].
func (s *Server) daysParam(r *http.Request) int {
	days := s.maxDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 {
			days = d
			if days > s.maxDays {
				days = s.maxDays
			}
		}
	}
	return days
}

// writeFetchError maps a fetch failure to the user-facing response: 404
// from upstream means the location was not found, any other upstream or
// transport failure is a gateway error.
func (s *Server) writeFetchError(w http.ResponseWriter, city string, err error) {
	var apiErr *datasource.APIError
	if errors.As(err, &apiErr) {
		if apiErr.NotFound() {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("location not found: %s", city),
			})
			return
		}
		log.Printf("upstream API error for %s: %v", city, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "weather provider request failed",
		})
		return
	}

	var malformedErr *datasource.MalformedResponseError
	if errors.As(err, &malformedErr) {
		log.Printf("malformed upstream response for %s: %v", city, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "weather provider returned an unreadable response",
		})
		return
	}

	log.Printf("error fetching weather for %s: %v", city, err)
	writeJSON(w, http.StatusBadGateway, map[string]string{
		"error": "failed to reach weather provider",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}
