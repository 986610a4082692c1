// Package aggregate reduces flat 3-hour forecast samples into per-day
// summaries for the dashboard's forecast cards and trend chart.
package aggregate

import (
	"sort"
	"time"

	"weather-dashboard/models"
)

// DailySummaries groups samples by calendar date and reduces each group to
// one summary, returning at most `days` summaries in ascending date order.
//
// Dates are derived in the process's local time zone, which can misfile
// samples for cities far from the server's zone; the upstream API does not
// expose a per-city zone on this endpoint, so local time is the accepted
// behavior. The first returned date may be the current, partially-elapsed
// day when the forecast starts today.
//
// A date whose samples carry no temperature at all is dropped, so the
// result may be shorter than `days` even when enough distinct dates exist.
func DailySummaries(samples []models.ForecastSample, days int) []models.DailySummary {
	if days < 1 {
		return nil
	}

	byDate := make(map[string][]models.ForecastSample)
	for _, s := range samples {
		if s.Timestamp == nil {
			continue
		}
		date := time.Unix(*s.Timestamp, 0).Format("2006-01-02")
		byDate[date] = append(byDate[date], s)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Lexicographic order is chronological order for ISO dates.
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[:days]
	}

	summaries := make([]models.DailySummary, 0, len(dates))
	for _, date := range dates {
		if summary, ok := summarizeDay(date, byDate[date]); ok {
			summaries = append(summaries, summary)
		}
	}

	return summaries
}

// summarizeDay reduces one day's samples. It reports false when no sample
// carries a temperature, in which case the day is omitted entirely.
func summarizeDay(date string, samples []models.ForecastSample) (models.DailySummary, bool) {
	var (
		temps []float64
		rain  float64
		descs []string
		icons []string
	)
	for _, s := range samples {
		if s.Temp != nil {
			temps = append(temps, *s.Temp)
		}
		rain += s.Rain3h
		if s.Description != "" {
			descs = append(descs, s.Description)
		}
		if s.Icon != "" {
			icons = append(icons, s.Icon)
		}
	}

	if len(temps) == 0 {
		return models.DailySummary{}, false
	}

	min, max := temps[0], temps[0]
	for _, t := range temps[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}

	return models.DailySummary{
		Date:        date,
		TempMin:     min,
		TempMax:     max,
		RainMM:      rain,
		Description: mostFrequent(descs),
		Icon:        mostFrequent(icons),
	}, true
}

// mostFrequent returns the most common value. Ties go to the value first
// encountered, so counting happens first and the winner is chosen by
// scanning distinct values in encounter order.
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
