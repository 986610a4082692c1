package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/api"
	"weather-dashboard/config"
	"weather-dashboard/datasource"
	"weather-dashboard/models"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "weather-dashboard"

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	configFile := flag.String("config", "", "Path to YAML configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration; a missing API key is fatal before any fetch
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	defaultUnits, err := models.ParseUnitSystem(cfg.Dashboard.DefaultUnits)
	if err != nil {
		log.Fatalf("Invalid default units in configuration: %v", err)
	}

	// Set up tracing when a zipkin endpoint is configured
	tracer, shutdownTracing, err := setupTracing(cfg.Tracing.ZipkinEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// Create the provider, rate limited by default to stay inside the
	// OpenWeatherMap free tier (60 calls/minute, bursts of up to 5)
	owm := datasource.NewOpenWeatherMapProvider(cfg.Provider.APIKey)
	var weather datasource.WeatherProvider = owm
	var forecasts datasource.ForecastSource = owm
	if *enableRateLimiting {
		limited := datasource.NewRateLimitedProvider(owm, owm, 1.0, 1.0, 5)
		weather = limited
		forecasts = limited
		log.Println("Applied rate limiting to OpenWeatherMap provider")
	}

	server := api.NewServer(
		weather,
		forecasts,
		tracer,
		defaultUnits,
		cfg.Dashboard.MaxForecastDays,
		time.Duration(cfg.Server.RequestTimeout)*time.Second,
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting dashboard server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	shutdownTracing(ctx)

	fmt.Println("Shutdown complete")
}

// setupTracing configures the zipkin exporter and global tracer provider.
// With no endpoint configured it returns a no-op tracer.
func setupTracing(endpoint string) (trace.Tracer, func(context.Context), error) {
	if endpoint == "" {
		return otel.Tracer(serviceName), func(context.Context) {}, nil
	}

	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create zipkin exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	shutdown := func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}
	return tp.Tracer(serviceName), shutdown, nil
}
