package handlers

import (
	"net/http"
	"trip-emissions-service/internal/api/dto"
	"trip-emissions-service/internal/domain"
)

// ListProfiles exposes the fixed transport-profile enumeration, in
// enumeration order, for the client's mode selector.
func ListProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListProfilesResponse{
		Profiles: make([]dto.ProfileResponse, 0, len(domain.Profiles)),
	}
	for _, p := range domain.Profiles {
		res.Profiles = append(res.Profiles, dto.ProfileResponse{
			ID:         p.ID,
			Name:       p.Name,
			GramsPerKm: p.GramsPerKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
