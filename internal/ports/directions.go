package ports

import (
	"context"
	"trip-emissions-service/internal/domain"
)

// Raw directions payload as returned by a mapping service: one route of
// ordered legs, each an ordered list of steps. The itinerary normalizer
// consumes this shape; it deliberately mirrors the upstream wire format
// so normalization stays a pure data transformation.
type TransitRoute struct {
	Legs []RouteLeg `json:"legs"`
}

type RouteLeg struct {
	Steps []RouteStep `json:"steps"`
}

type RouteStep struct {
	TravelMode   string          `json:"travel_mode"`
	DistanceText string          `json:"distance_text"`
	DurationText string          `json:"duration_text"`
	Transit      *TransitDetails `json:"transit,omitempty"`
}

type TransitDetails struct {
	VehicleName   string `json:"vehicle_name"`
	LineName      string `json:"line_name"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	NumStops      int    `json:"num_stops"`
}

// Contract for retrieving a transit route between two points.
// A nil route with a nil error means the service found no transit
// option; callers treat that the same as an empty route.
type DirectionsProvider interface {
	GetTransitRoute(ctx context.Context, origin, destination domain.Coordinates) (*TransitRoute, error)
}
