package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"trip-emissions-service/internal/api/dto"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
	"trip-emissions-service/internal/services"
)

type GeocodeHandler struct {
	Geocoder ports.Geocoder
}

// Search resolves a free-text address. A failed lookup is the one
// geocoding error the client surfaces inline, so it maps to 502.
func (h *GeocodeHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	loc, err := h.Geocoder.Geocode(r.Context(), address)
	if err != nil {
		log.Printf("geocode failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "could not find that address")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
		Lat:              loc.Lat,
		Lng:              loc.Lng,
		FormattedAddress: loc.Address,
	})
}

// Reverse resolves coordinates to a display address. This endpoint
// never errors on upstream failure: marker drops always get a label,
// synthesized from the coordinates when the lookup fails.
func (h *GeocodeHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, r, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}

	c := domain.Coordinates{Lat: lat, Lng: lng}
	if !c.Valid() {
		writeError(w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}

	address := services.DescribeCoordinate(r.Context(), h.Geocoder, c)

	writeJSON(w, r, http.StatusOK, dto.ReverseGeocodeResponse{Address: address})
}
