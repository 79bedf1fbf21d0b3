package dto

type LocationPayload struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type EstimateTripRequest struct {
	Origin      LocationPayload `json:"origin"`
	Destination LocationPayload `json:"destination"`
	ProfileID   string          `json:"profile_id"`
}

type TransitSegmentResponse struct {
	Mode          string `json:"mode"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	Distance      string `json:"distance"`
	WalkingBefore string `json:"walking_before,omitempty"`
	WalkingAfter  string `json:"walking_after,omitempty"`
}

type EstimateTripResponse struct {
	DistanceKm  float64                  `json:"distance_km"`
	EmissionsKg float64                  `json:"emissions_kg"`
	Profile     string                   `json:"profile"`
	Segments    []TransitSegmentResponse `json:"segments"`
	Narrative   string                   `json:"narrative"`
}
