package models

import "time"

// DefaultRadiusMeters is applied to new locations created without a radius.
const DefaultRadiusMeters = 200.0

// Coordinate is a reported position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// AuthorizedLocation is a circular region where clock events are accepted.
// Only active locations take part in validation.
type AuthorizedLocation struct {
	ID           int64
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Active       bool
	CreatedAt    time.Time
}
