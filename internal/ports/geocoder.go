package ports

import (
	"context"
	"trip-emissions-service/internal/domain"
)

// Contract for resolving free-text addresses to coordinates and back.
type Geocoder interface {
	// Resolve an address to coordinates and a formatted address.
	Geocode(ctx context.Context, address string) (domain.Location, error)
	// Resolve coordinates to a formatted address.
	ReverseGeocode(ctx context.Context, c domain.Coordinates) (string, error)
}
