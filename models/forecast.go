package models

// ForecastSample is a single 3-hour-resolution forecast reading. Samples
// only live between response decoding and daily aggregation.
type ForecastSample struct {
	Timestamp   *int64   // unix epoch of the reading, nil when the API omits it
	Temp        *float64 // nil when the API omits it
	Rain3h      float64  // mm over the 3-hour bucket, 0 when absent
	Description string
	Icon        string
}

// DailySummary is the day-level reduction of the samples falling on one
// calendar date.
type DailySummary struct {
	Date        string  `json:"date"` // ISO 8601 date, no time component
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	RainMM      float64 `json:"rainMm"`      // summed over all samples that day
	Description string  `json:"description"` // most frequent among the day's samples
	Icon        string  `json:"icon"`        // most frequent among the day's samples
}
