package models

// CurrentConditions is the flat projection of one current-weather response.
//
// Numeric fields are pointers because the upstream API may omit any of them;
// consumers must treat nil as "unknown", never as zero. Rain1h is the one
// exception: an absent rain object means no rain was measured, so it
// defaults to 0.
type CurrentConditions struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Temp        *float64 `json:"temp"`
	FeelsLike   *float64 `json:"feelsLike"`
	Humidity    *float64 `json:"humidity"`    // percentage
	Pressure    *float64 `json:"pressure"`    // hPa
	Description string   `json:"description"` // short text description
	Icon        string   `json:"icon"`        // icon code
	WindSpeed   *float64 `json:"windSpeed"`
	Clouds      *float64 `json:"clouds"` // cloud cover percentage
	Rain1h      float64  `json:"rain1h"` // mm over the last hour, 0 when absent
	Sunrise     *int64   `json:"sunrise"`
	Sunset      *int64   `json:"sunset"`
	ObservedAt  *int64   `json:"observedAt"` // observation time, unix epoch
}
