package dto

type GeocodeResponse struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

type ReverseGeocodeResponse struct {
	Address string `json:"address"`
}
