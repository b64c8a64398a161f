// Package geo validates clock-event positions against circular geofences.
// Distances use the haversine formula on a spherical earth.
package geo

import (
	"math"

	"github.com/dmitrijs2005/geoattend/internal/common"
)

// EarthRadiusMeters is the mean earth radius used for all distances.
const EarthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Validate rejects NaN and out-of-range coordinates.
func (p Point) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return common.Validationf("coordinate is not a number")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return common.Validationf("latitude %v out of range", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return common.Validationf("longitude %v out of range", p.Longitude)
	}
	return nil
}

// Fence is an authorized circular region.
type Fence struct {
	ID           int64
	Center       Point
	RadiusMeters float64
}

// Result is the outcome of Validate.
//
// When Matched, BestMatch is the closest containing fence and DistanceMeters
// the distance to its center. Otherwise BestMatch is nil and Nearest /
// DistanceMeters describe the closest fence center (nil / 0 for an empty set).
type Result struct {
	Matched        bool
	BestMatch      *int64
	Nearest        *int64
	DistanceMeters float64
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Validate decides whether p lies within any of fences. A fence contains p
// when the distance to its center is <= its radius. Among containing fences
// the smallest distance wins; ties go to the lowest ID.
func Validate(p Point, fences []Fence) Result {
	var (
		res         Result
		bestID      int64
		bestDist    float64
		nearestID   int64
		nearestDist float64
		haveBest    bool
		haveNearest bool
	)

	for _, f := range fences {
		d := Distance(p, f.Center)

		if !haveNearest || closer(d, f.ID, nearestDist, nearestID) {
			nearestID, nearestDist, haveNearest = f.ID, d, true
		}

		if d <= f.RadiusMeters && (!haveBest || closer(d, f.ID, bestDist, bestID)) {
			bestID, bestDist, haveBest = f.ID, d, true
		}
	}

	if haveBest {
		res.Matched = true
		res.BestMatch = &bestID
		res.Nearest = &bestID
		res.DistanceMeters = bestDist
		return res
	}

	if haveNearest {
		res.Nearest = &nearestID
		res.DistanceMeters = nearestDist
	}
	return res
}

func closer(d float64, id int64, curDist float64, curID int64) bool {
	if d != curDist {
		return d < curDist
	}
	return id < curID
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
