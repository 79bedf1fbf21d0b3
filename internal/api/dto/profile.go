package dto

type ProfileResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	GramsPerKm float64 `json:"grams_per_km"`
}

type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}
