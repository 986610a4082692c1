package aggregate_test

import (
	"testing"
	"time"

	"weather-dashboard/aggregate"
	"weather-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func epoch(day, hour int) *int64 {
	ts := time.Date(2025, time.March, day, hour, 0, 0, 0, time.Local).Unix()
	return &ts
}

func f64(v float64) *float64 {
	return &v
}

func sample(day, hour int, temp *float64, rain float64, desc, icon string) models.ForecastSample {
	return models.ForecastSample{
		Timestamp:   epoch(day, hour),
		Temp:        temp,
		Rain3h:      rain,
		Description: desc,
		Icon:        icon,
	}
}

func TestDailySummaries_GroupsAndBounds(t *testing.T) {
	samples := []models.ForecastSample{
		sample(10, 9, f64(8.0), 0, "clear sky", "01d"),
		sample(10, 12, f64(12.5), 0, "clear sky", "01d"),
		sample(11, 9, f64(6.0), 1.2, "light rain", "10d"),
		sample(12, 9, f64(4.0), 0, "few clouds", "02d"),
		sample(13, 9, f64(3.0), 0, "few clouds", "02d"),
	}

	tests := []struct {
		name     string
		days     int
		expected []string
	}{
		{"fewer days than dates", 2, []string{"2025-03-10", "2025-03-11"}},
		{"exactly the distinct dates", 4, []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13"}},
		{"more days than dates", 10, []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregate.DailySummaries(samples, tt.days)
			require.Len(t, got, len(tt.expected))
			for i, s := range got {
				assert.Equal(t, tt.expected[i], s.Date)
				assert.LessOrEqual(t, s.TempMin, s.TempMax)
				assert.GreaterOrEqual(t, s.RainMM, 0.0)
			}
		})
	}
}

func TestDailySummaries_MinMaxAndRainSum(t *testing.T) {
	samples := []models.ForecastSample{
		sample(10, 0, f64(5.0), 0, "clear sky", "01d"),
		sample(10, 3, f64(9.5), 2.5, "light rain", "10d"),
		sample(10, 6, nil, 0, "light rain", "10d"), // no temp, no rain field
		sample(10, 9, f64(7.0), 1.0, "clear sky", "01d"),
	}

	got := aggregate.DailySummaries(samples, 5)
	require.Len(t, got, 1)
	assert.Equal(t, 5.0, got[0].TempMin)
	assert.Equal(t, 9.5, got[0].TempMax)
	assert.InDelta(t, 3.5, got[0].RainMM, 1e-9)
}

func TestDailySummaries_MostFrequentDescriptionTieBreak(t *testing.T) {
	t.Run("majority wins", func(t *testing.T) {
		samples := []models.ForecastSample{
			sample(10, 0, f64(5.0), 0, "clear", "01d"),
			sample(10, 3, f64(6.0), 0, "rain", "10d"),
			sample(10, 6, f64(7.0), 0, "clear", "01d"),
		}
		got := aggregate.DailySummaries(samples, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "clear", got[0].Description)
		assert.Equal(t, "01d", got[0].Icon)
	})

	t.Run("tie goes to first seen", func(t *testing.T) {
		samples := []models.ForecastSample{
			sample(10, 0, f64(5.0), 0, "clear", "01d"),
			sample(10, 3, f64(6.0), 0, "rain", "10d"),
		}
		got := aggregate.DailySummaries(samples, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "clear", got[0].Description)
		assert.Equal(t, "01d", got[0].Icon)
	})

	t.Run("interleaved tie goes to first seen, not first to peak", func(t *testing.T) {
		// "clear" reaches count 2 before "rain" does, but "rain" was
		// encountered first, so it wins the tie.
		samples := []models.ForecastSample{
			sample(10, 0, f64(5.0), 0, "rain", "10d"),
			sample(10, 3, f64(6.0), 0, "clear", "01d"),
			sample(10, 6, f64(7.0), 0, "clear", "01d"),
			sample(10, 9, f64(8.0), 0, "rain", "10d"),
		}
		got := aggregate.DailySummaries(samples, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "rain", got[0].Description)
		assert.Equal(t, "10d", got[0].Icon)
	})
}

func TestDailySummaries_DropsDatesWithoutTemperatures(t *testing.T) {
	samples := []models.ForecastSample{
		sample(10, 9, f64(8.0), 0, "clear sky", "01d"),
		sample(11, 9, nil, 2.0, "light rain", "10d"), // only temperature-less samples on the 11th
		sample(12, 9, f64(4.0), 0, "few clouds", "02d"),
	}

	got := aggregate.DailySummaries(samples, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-10", got[0].Date)
	assert.Equal(t, "2025-03-12", got[1].Date)
}

func TestDailySummaries_DiscardsSamplesWithoutTimestamps(t *testing.T) {
	samples := []models.ForecastSample{
		{Temp: f64(99.0), Description: "orphan", Icon: "01d"},
		sample(10, 9, f64(8.0), 0, "clear sky", "01d"),
	}

	got := aggregate.DailySummaries(samples, 5)
	require.Len(t, got, 1)
	assert.Equal(t, 8.0, got[0].TempMax)
}

func TestDailySummaries_EmptyInput(t *testing.T) {
	assert.Empty(t, aggregate.DailySummaries(nil, 5))
	assert.Empty(t, aggregate.DailySummaries([]models.ForecastSample{}, 5))
}
