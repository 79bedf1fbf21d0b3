package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trip-emissions-service/internal/adapters/maps"
	"trip-emissions-service/internal/adapters/narrative"
	"trip-emissions-service/internal/api/dto"
	"trip-emissions-service/internal/ports"
)

func estimateBody() string {
	return `{
		"origin": {"lat": 49.2827, "lng": -123.1207, "address": "Downtown Vancouver"},
		"destination": {"lat": 49.2827, "lng": -123.0, "address": "East Vancouver"},
		"profile_id": "gas-car"
	}`
}

func TestTripHandlerEstimate(t *testing.T) {
	h := &TripHandler{
		Directions: &maps.MockDirectionsProvider{
			Route: &ports.TransitRoute{
				Legs: []ports.RouteLeg{
					{Steps: []ports.RouteStep{
						{
							TravelMode:   "TRANSIT",
							DistanceText: "6.1 km",
							Transit: &ports.TransitDetails{
								VehicleName:   "Bus",
								DepartureStop: "A",
								ArrivalStop:   "B",
							},
						},
					}},
				},
			},
		},
		Narrative: &narrative.MockGenerator{Text: "Reasonably efficient."},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/estimate", strings.NewReader(estimateBody()))
	rec := httptest.NewRecorder()

	h.Estimate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.EstimateTripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DistanceKm <= 0 {
		t.Errorf("distance_km = %v, want positive", res.DistanceKm)
	}
	if res.Profile != "Gas Car" {
		t.Errorf("profile = %q, want %q", res.Profile, "Gas Car")
	}
	if len(res.Segments) != 1 || res.Segments[0].Mode != "Bus" {
		t.Errorf("segments = %+v", res.Segments)
	}
	if res.Narrative != "Reasonably efficient." {
		t.Errorf("narrative = %q", res.Narrative)
	}
}

func TestTripHandlerEstimateRejectsBadCoordinates(t *testing.T) {
	h := &TripHandler{
		Directions: &maps.MockDirectionsProvider{},
		Narrative:  &narrative.MockGenerator{},
	}

	body := `{
		"origin": {"lat": 91.0, "lng": 0},
		"destination": {"lat": 0, "lng": 0},
		"profile_id": "gas-car"
	}`

	req := httptest.NewRequest(http.MethodPost, "/trips/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Estimate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTripHandlerEstimateRejectsUnknownFields(t *testing.T) {
	h := &TripHandler{
		Directions: &maps.MockDirectionsProvider{},
		Narrative:  &narrative.MockGenerator{},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/estimate",
		strings.NewReader(`{"bogus": true}`))
	rec := httptest.NewRecorder()

	h.Estimate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTripHandlerEstimateMethodNotAllowed(t *testing.T) {
	h := &TripHandler{}

	req := httptest.NewRequest(http.MethodGet, "/trips/estimate", nil)
	rec := httptest.NewRecorder()

	h.Estimate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
