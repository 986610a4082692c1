package models_test

import (
	"testing"

	"weather-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		in      string
		want    models.UnitSystem
		wantErr bool
	}{
		{"metric", models.Metric, false},
		{"imperial", models.Imperial, false},
		{"", models.Metric, false},
		{"kelvin", "", true},
		{"Metric", "", true},
	}

	for _, tt := range tests {
		got, err := models.ParseUnitSystem(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestUnitSuffixes(t *testing.T) {
	assert.Equal(t, "°C", models.Metric.TempSuffix())
	assert.Equal(t, "m/s", models.Metric.WindSuffix())
	assert.Equal(t, "°F", models.Imperial.TempSuffix())
	assert.Equal(t, "mph", models.Imperial.WindSuffix())
}
