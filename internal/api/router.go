package api

import (
	"net/http"
	"trip-emissions-service/internal/api/handlers"
	"trip-emissions-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	narrative ports.NarrativeGenerator,
) http.Handler {
	mux := http.NewServeMux()

	geocodeHandler := &handlers.GeocodeHandler{Geocoder: geocoder}
	tripHandler := &handlers.TripHandler{
		Directions: directions,
		Narrative:  narrative,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/profiles", handlers.ListProfiles)
	mux.HandleFunc("/geocode", geocodeHandler.Search)
	mux.HandleFunc("/geocode/reverse", geocodeHandler.Reverse)
	mux.HandleFunc("/trips/estimate", tripHandler.Estimate)

	return loggingMiddleware(mux)
}
