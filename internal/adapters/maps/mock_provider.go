package maps

import (
	"context"
	"fmt"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
)

// Canned DirectionsProvider for tests.
type MockDirectionsProvider struct {
	Route *ports.TransitRoute
	Err   error
	Calls int
}

func (m *MockDirectionsProvider) GetTransitRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (*ports.TransitRoute, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Route, nil
}

// Canned Geocoder for tests, backed by fixed lookup tables.
type MockGeocoder struct {
	Locations  map[string]domain.Location
	Addresses  map[domain.Coordinates]string
	ReverseErr error
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Location, error) {
	loc, ok := m.Locations[address]
	if !ok {
		return domain.Location{}, fmt.Errorf("no mock geocode result for %q", address)
	}
	return loc, nil
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, c domain.Coordinates) (string, error) {
	if m.ReverseErr != nil {
		return "", m.ReverseErr
	}
	addr, ok := m.Addresses[c]
	if !ok {
		return "", fmt.Errorf("no mock address for %.4f,%.4f", c.Lat, c.Lng)
	}
	return addr, nil
}
