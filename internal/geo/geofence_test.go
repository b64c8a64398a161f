package geo

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bangkok = Point{Latitude: 13.7563, Longitude: 100.5018}

// offsetNorth returns a point d meters due north of p.
func offsetNorth(p Point, d float64) Point {
	return Point{Latitude: p.Latitude + d/EarthRadiusMeters*180/math.Pi, Longitude: p.Longitude}
}

func TestDistance_Known(t *testing.T) {
	assert.Equal(t, 0.0, Distance(bangkok, bangkok))

	for _, d := range []float64{1, 50, 200, 500, 9999} {
		got := Distance(bangkok, offsetNorth(bangkok, d))
		assert.InDelta(t, d, got, 1, "distance for %v m", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pts := []Point{
		bangkok,
		{Latitude: 51.5007, Longitude: -0.1246},
		{Latitude: -33.8568, Longitude: 151.2153},
		{Latitude: 0, Longitude: 179.9999},
		{Latitude: 0, Longitude: -179.9999},
	}
	for _, a := range pts {
		for _, b := range pts {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
	}
}

func TestValidate(t *testing.T) {
	l1 := Fence{ID: 1, Center: bangkok, RadiusMeters: 200}
	l2 := Fence{ID: 2, Center: offsetNorth(bangkok, 1000), RadiusMeters: 200}

	tests := []struct {
		name        string
		point       Point
		fences      []Fence
		matched     bool
		best        *int64
		nearest     *int64
		distance    float64
		distanceTol float64
	}{
		{name: "empty set", point: bangkok, fences: nil, matched: false},
		{name: "at center", point: bangkok, fences: []Fence{l1, l2}, matched: true, best: ptr(1), nearest: ptr(1), distance: 0, distanceTol: 0.001},
		{name: "inside radius", point: offsetNorth(bangkok, 150), fences: []Fence{l1, l2}, matched: true, best: ptr(1), nearest: ptr(1), distance: 150, distanceTol: 1},
		{name: "inside second", point: offsetNorth(bangkok, 950), fences: []Fence{l1, l2}, matched: true, best: ptr(2), nearest: ptr(2), distance: 50, distanceTol: 1},
		{name: "outside all", point: offsetNorth(bangkok, 450), fences: []Fence{l1, l2}, matched: false, nearest: ptr(1), distance: 450, distanceTol: 1},
		{name: "500m away single", point: offsetNorth(bangkok, 500), fences: []Fence{l1}, matched: false, nearest: ptr(1), distance: 500, distanceTol: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.point, tt.fences)
			assert.Equal(t, tt.matched, res.Matched)
			assert.Equal(t, tt.best, res.BestMatch)
			assert.Equal(t, tt.nearest, res.Nearest)
			assert.InDelta(t, tt.distance, res.DistanceMeters, tt.distanceTol)
		})
	}
}

func TestValidate_OverlappingPicksClosest(t *testing.T) {
	p := offsetNorth(bangkok, 100)
	fences := []Fence{
		{ID: 7, Center: bangkok, RadiusMeters: 500},
		{ID: 3, Center: offsetNorth(bangkok, 120), RadiusMeters: 500},
	}
	res := Validate(p, fences)
	require.True(t, res.Matched)
	assert.Equal(t, int64(3), *res.BestMatch)
}

func TestValidate_TieBreakLowestID(t *testing.T) {
	fences := []Fence{
		{ID: 9, Center: bangkok, RadiusMeters: 100},
		{ID: 4, Center: bangkok, RadiusMeters: 100},
		{ID: 6, Center: bangkok, RadiusMeters: 100},
	}
	res := Validate(bangkok, fences)
	require.True(t, res.Matched)
	assert.Equal(t, int64(4), *res.BestMatch)
}

func TestValidate_BoundaryInclusive(t *testing.T) {
	p := offsetNorth(bangkok, 200)
	d := Distance(p, bangkok)
	res := Validate(p, []Fence{{ID: 1, Center: bangkok, RadiusMeters: d}})
	assert.True(t, res.Matched)
}

func TestValidate_InsideOutsideProperty(t *testing.T) {
	fence := Fence{ID: 1, Center: bangkok, RadiusMeters: 200}
	for d := 0.0; d < 199; d += 13 {
		assert.True(t, Validate(offsetNorth(bangkok, d), []Fence{fence}).Matched, "d=%v", d)
	}
	for d := 202.0; d < 5000; d += 97 {
		assert.False(t, Validate(offsetNorth(bangkok, d), []Fence{fence}).Matched, "d=%v", d)
	}
}

func TestPoint_Validate(t *testing.T) {
	assert.NoError(t, bangkok.Validate())
	assert.NoError(t, Point{Latitude: -90, Longitude: 180}.Validate())
	assert.ErrorIs(t, Point{Latitude: 91}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Point{Longitude: -181}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Point{Latitude: math.NaN()}.Validate(), common.ErrValidation)
}

func ptr(v int64) *int64 { return &v }
