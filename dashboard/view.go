// Package dashboard builds the display-ready view model handed to the
// rendering surface. Everything here is a pure function over fully-resolved
// fetch results: absent values become "N/A", never zero.
package dashboard

import (
	"fmt"
	"time"

	"weather-dashboard/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const iconBaseURL = "https://openweathermap.org/img/wn"

// titleCase renders an upstream all-lowercase description for display.
// A Caser is stateful and not safe for concurrent use, so one is built
// per call rather than shared across requests.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// View is the complete dashboard payload: current conditions, one card per
// forecast day, and the series for the trend chart.
type View struct {
	Current  CurrentView    `json:"current"`
	Forecast []ForecastCard `json:"forecast"`
	Chart    ChartData      `json:"chart"`
}

// CurrentView holds pre-formatted strings for the current-conditions panel.
type CurrentView struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
	Clouds      string `json:"clouds"`
	Rain1h      string `json:"rain1h"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	ObservedAt  string `json:"observedAt"`
}

// ForecastCard holds pre-formatted strings for one forecast-day card.
type ForecastCard struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
	TempMin     string `json:"tempMin"`
	TempMax     string `json:"tempMax"`
	Rain        string `json:"rain"`
}

// ChartData carries the trend chart series as parallel slices.
type ChartData struct {
	Dates   []string  `json:"dates"`
	TempMin []float64 `json:"tempMin"`
	TempMax []float64 `json:"tempMax"`
	RainMM  []float64 `json:"rainMm"`
}

// NewView assembles the dashboard view model from one current-conditions
// record and its daily forecast summaries.
func NewView(current models.CurrentConditions, forecast []models.DailySummary, units models.UnitSystem) View {
	view := View{
		Current:  newCurrentView(current, units),
		Forecast: make([]ForecastCard, 0, len(forecast)),
		Chart: ChartData{
			Dates:   make([]string, 0, len(forecast)),
			TempMin: make([]float64, 0, len(forecast)),
			TempMax: make([]float64, 0, len(forecast)),
			RainMM:  make([]float64, 0, len(forecast)),
		},
	}

	for _, day := range forecast {
		view.Forecast = append(view.Forecast, ForecastCard{
			Date:        day.Date,
			Description: titleCase(day.Description),
			IconURL:     IconURL(day.Icon, "2x"),
			TempMin:     fmt.Sprintf("%.1f%s", day.TempMin, units.TempSuffix()),
			TempMax:     fmt.Sprintf("%.1f%s", day.TempMax, units.TempSuffix()),
			Rain:        fmt.Sprintf("%.1f mm", day.RainMM),
		})
		view.Chart.Dates = append(view.Chart.Dates, day.Date)
		view.Chart.TempMin = append(view.Chart.TempMin, day.TempMin)
		view.Chart.TempMax = append(view.Chart.TempMax, day.TempMax)
		view.Chart.RainMM = append(view.Chart.RainMM, day.RainMM)
	}

	return view
}

func newCurrentView(c models.CurrentConditions, units models.UnitSystem) CurrentView {
	location := c.City
	if c.Country != "" {
		location = fmt.Sprintf("%s, %s", c.City, c.Country)
	}

	return CurrentView{
		Location:    location,
		Temperature: formatMeasure(c.Temp, "%.1f", units.TempSuffix()),
		FeelsLike:   formatMeasure(c.FeelsLike, "%.1f", units.TempSuffix()),
		Description: titleCase(c.Description),
		IconURL:     IconURL(c.Icon, "4x"),
		Humidity:    formatMeasure(c.Humidity, "%.0f", "%"),
		Wind:        formatMeasure(c.WindSpeed, "%.1f", " "+units.WindSuffix()),
		Pressure:    formatMeasure(c.Pressure, "%.0f", " hPa"),
		Clouds:      formatMeasure(c.Clouds, "%.0f", "%"),
		Rain1h:      fmt.Sprintf("%.1f mm", c.Rain1h),
		Sunrise:     formatClock(c.Sunrise),
		Sunset:      formatClock(c.Sunset),
		ObservedAt:  formatDateTime(c.ObservedAt),
	}
}

// IconURL builds the OpenWeatherMap icon image URL for an icon code at the
// given scale ("2x", "4x"). An empty code yields an empty URL.
func IconURL(icon, scale string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s@%s.png", iconBaseURL, icon, scale)
}

// formatMeasure renders an optional measurement with its unit suffix, or
// "N/A" when the upstream omitted the field.
func formatMeasure(v *float64, format, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v) + suffix
}

// A zero epoch is treated like an absent one: the upstream never reports a
// real 1970 timestamp, only a placeholder.
func formatClock(epoch *int64) string {
	if epoch == nil || *epoch == 0 {
		return "N/A"
	}
	return time.Unix(*epoch, 0).Format("03:04 PM")
}

func formatDateTime(epoch *int64) string {
	if epoch == nil || *epoch == 0 {
		return "N/A"
	}
	return time.Unix(*epoch, 0).Format("Monday, 02 Jan 2006 03:04 PM")
}
