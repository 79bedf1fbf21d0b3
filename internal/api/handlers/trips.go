package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"trip-emissions-service/internal/api/dto"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
	"trip-emissions-service/internal/services"
)

type TripHandler struct {
	Directions ports.DirectionsProvider
	Narrative  ports.NarrativeGenerator
}

// Estimate runs one trip calculation: distance, emissions, normalized
// transit itinerary, and the narrative assessment. Directions and
// narrative failures degrade inside the pipeline, so this handler only
// fails on invalid input.
func (h *TripHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin, ok := toLocation(req.Origin)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "origin coordinates out of range")
		return
	}
	destination, ok := toLocation(req.Destination)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "destination coordinates out of range")
		return
	}

	result := services.EstimateTrip(r.Context(), services.EstimateTripRequest{
		Origin:      origin,
		Destination: destination,
		ProfileID:   req.ProfileID,
	}, h.Directions, h.Narrative)

	segments := make([]dto.TransitSegmentResponse, 0, len(result.Segments))
	for _, s := range result.Segments {
		segments = append(segments, dto.TransitSegmentResponse{
			Mode:          s.Mode,
			DepartureStop: s.DepartureStop,
			ArrivalStop:   s.ArrivalStop,
			Distance:      s.Distance,
			WalkingBefore: s.WalkingBefore,
			WalkingAfter:  s.WalkingAfter,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.EstimateTripResponse{
		DistanceKm:  result.DistanceKm,
		EmissionsKg: result.EmissionsKg,
		Profile:     result.Profile.Name,
		Segments:    segments,
		Narrative:   result.Narrative,
	})
}

// toLocation validates the coordinate ranges and synthesizes a display
// address when the client sent none.
func toLocation(p dto.LocationPayload) (domain.Location, bool) {
	c := domain.Coordinates{Lat: p.Lat, Lng: p.Lng}
	if !c.Valid() {
		return domain.Location{}, false
	}

	address := strings.TrimSpace(p.Address)
	if address == "" {
		address = c.FallbackLabel()
	}

	return domain.Location{Coordinates: c, Address: address}, true
}
