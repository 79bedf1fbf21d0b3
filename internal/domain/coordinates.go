package domain

import (
	"fmt"
	"math"
)

// Earth radius used for great-circle distances, in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinates fall within the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// FallbackLabel is the synthesized display address used when reverse
// geocoding is unavailable. Clients rely on this exact format.
func (c Coordinates) FallbackLabel() string {
	return fmt.Sprintf("Location at %.4f, %.4f", c.Lat, c.Lng)
}

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers. The result is exact to float precision; rounding for
// display happens at the result boundary, not here.
func HaversineKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Float error can push h a hair above 1 for near-antipodal points,
	// which would make Sqrt(1-h) NaN. Clamp so the result stays a valid
	// non-negative distance.
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
