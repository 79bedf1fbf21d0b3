package services

import (
	"context"
	"log"
	"math"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
)

// NarrativeFallback replaces the narrative when text generation fails.
// Distance and emissions are still reported normally in that case.
const NarrativeFallback = "Sorry, an efficiency assessment could not be generated for this trip."

type EstimateTripRequest struct {
	Origin      domain.Location
	Destination domain.Location
	ProfileID   string
}

// EstimateTrip runs one calculation as a two-stage pipeline.
//
// Stage 1 computes distance and emissions and performs the transit
// directions lookup. A lookup failure is logged and collapses to a nil
// route, which normalizes to an empty itinerary; it is never surfaced.
//
// Stage 2 builds the narrative prompt from stage 1's output (or its
// absence) and calls the text-generation service. A failure there is
// logged and replaced by NarrativeFallback.
//
// The two failure modes stay deliberately asymmetric (absent data vs.
// placeholder text); both leave the result usable, so EstimateTrip is
// total and returns no error.
func EstimateTrip(
	ctx context.Context,
	req EstimateTripRequest,
	directions ports.DirectionsProvider,
	narrative ports.NarrativeGenerator,
) domain.EmissionResult {
	profile := domain.ProfileByID(req.ProfileID)
	distanceKm := domain.HaversineKm(req.Origin.Coordinates, req.Destination.Coordinates)
	emissionsKg := domain.EstimateEmissionsKg(distanceKm, profile)

	var route *ports.TransitRoute
	if directions != nil {
		r, err := directions.GetTransitRoute(ctx, req.Origin.Coordinates, req.Destination.Coordinates)
		if err != nil {
			log.Printf("transit directions lookup failed: %v", err)
		} else {
			route = r
		}
	}
	segments := NormalizeItinerary(route)

	prompt := BuildPrompt(req.Origin, req.Destination, profile, distanceKm, emissionsKg, segments)

	text := NarrativeFallback
	if narrative != nil {
		t, err := narrative.Summarize(ctx, prompt)
		if err != nil {
			log.Printf("narrative generation failed: %v", err)
		} else {
			text = t
		}
	}

	// Internal precision is kept until this boundary.
	return domain.EmissionResult{
		DistanceKm:  round2(distanceKm),
		EmissionsKg: round2(emissionsKg),
		Profile:     profile,
		Segments:    segments,
		Narrative:   text,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
