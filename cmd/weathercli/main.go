// Command weathercli performs a one-shot current-conditions fetch and
// prints the result, mirroring what the dashboard shows.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/dashboard"
	"weather-dashboard/datasource"
	"weather-dashboard/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	city := flag.String("city", "", "City name to fetch weather for")
	unitsFlag := flag.String("units", "metric", "Unit system: metric or imperial")
	flag.Parse()

	if *city == "" {
		fmt.Println("Usage: weathercli -city <name> [-units metric|imperial]")
		os.Exit(2)
	}

	units, err := models.ParseUnitSystem(*unitsFlag)
	if err != nil {
		log.Fatalf("Invalid units: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := datasource.NewOpenWeatherMapProvider(cfg.Provider.APIKey)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	current, err := provider.GetWeather(ctx, *city, units)
	if err != nil {
		var apiErr *datasource.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			fmt.Printf("City not found: %s\n", *city)
			os.Exit(1)
		}
		log.Fatalf("Error fetching weather: %v", err)
	}

	view := dashboard.NewView(current, nil, units)
	fmt.Printf("Weather in %s:\n", view.Current.Location)
	fmt.Printf("  %s\n", view.Current.Description)
	fmt.Printf("  Temp: %s (feels like %s)\n", view.Current.Temperature, view.Current.FeelsLike)
	fmt.Printf("  Humidity: %s  Wind: %s\n", view.Current.Humidity, view.Current.Wind)
	fmt.Printf("  Sunrise: %s  Sunset: %s\n", view.Current.Sunrise, view.Current.Sunset)
}
