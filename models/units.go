package models

import "fmt"

// UnitSystem selects the measurement system requested from the upstream API.
type UnitSystem string

const (
	// Metric reports temperatures in Celsius and wind in m/s.
	Metric UnitSystem = "metric"
	// Imperial reports temperatures in Fahrenheit and wind in mph.
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem validates a raw units string. An empty string falls back
// to metric, matching the upstream API default used throughout the service.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(s) {
	case Metric, Imperial:
		return UnitSystem(s), nil
	case "":
		return Metric, nil
	default:
		return "", fmt.Errorf("unknown unit system %q (expected %q or %q)", s, Metric, Imperial)
	}
}

// TempSuffix returns the display suffix for temperatures in this system.
func (u UnitSystem) TempSuffix() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// WindSuffix returns the display suffix for wind speeds in this system.
func (u UnitSystem) WindSuffix() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}
