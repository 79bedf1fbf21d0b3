package services

import (
	"fmt"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
)

// NormalizeItinerary flattens a raw directions route into an ordered
// sequence of transit segments, one per step carrying transit details.
//
// Each leg is scanned in a single forward pass with a look-behind and
// look-ahead of one step: a WALKING step immediately before or after a
// transit step (within the same leg) is attached to that segment as a
// walking descriptor. Walking adjacency never crosses leg boundaries.
//
// A nil route, a route without legs, or steps missing expected fields
// all degrade to an empty (or shorter) sequence rather than an error;
// callers treat "empty" and "no route found" identically.
func NormalizeItinerary(route *ports.TransitRoute) []domain.TransitSegment {
	segments := []domain.TransitSegment{}
	if route == nil {
		return segments
	}

	for _, leg := range route.Legs {
		for i, step := range leg.Steps {
			td := step.Transit
			if td == nil || td.DepartureStop == "" || td.ArrivalStop == "" {
				continue
			}

			seg := domain.TransitSegment{
				Mode:          td.VehicleName,
				DepartureStop: td.DepartureStop,
				ArrivalStop:   td.ArrivalStop,
				Distance:      step.DistanceText,
			}
			if seg.Mode == "" {
				seg.Mode = "Transit"
			}

			if i > 0 {
				seg.WalkingBefore = walkDescriptor(leg.Steps[i-1])
			}
			if i+1 < len(leg.Steps) {
				seg.WalkingAfter = walkDescriptor(leg.Steps[i+1])
			}

			segments = append(segments, seg)
		}
	}

	return segments
}

// walkDescriptor renders "distance (duration)" for a walking step, or
// "" when the step is not a walk or lacks the expected fields.
func walkDescriptor(step ports.RouteStep) string {
	if step.TravelMode != "WALKING" {
		return ""
	}
	if step.DistanceText == "" || step.DurationText == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s)", step.DistanceText, step.DurationText)
}
