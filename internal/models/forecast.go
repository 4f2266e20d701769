package models

import "time"

// Coordinates is a geocoded location, transient to a single request
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ForecastRecord is one daily bucket of the precipitation forecast. Date
// serializes as RFC 3339 UTC, e.g. "2024-01-01T00:00:00Z".
type ForecastRecord struct {
	Date                        time.Time `json:"date"`
	PrecipitationProbabilityMax float64   `json:"precipitation_probability_max"`
}
