package domain

// A transport mode with its CO2 emission factor.
// Profiles are process-wide constant data; there is no behavior beyond
// the factor value, so the set is a closed lookup table.
type TransportProfile struct {
	ID         string
	Name       string
	GramsPerKm float64
}

// The fixed profile enumeration, in display order. The first entry is
// the fallback for unknown identifiers.
var Profiles = []TransportProfile{
	{ID: "gas-car", Name: "Gas Car", GramsPerKm: 170},
	{ID: "electric-car", Name: "Electric Car", GramsPerKm: 47},
	{ID: "public-transit", Name: "Public Transit", GramsPerKm: 68},
}

// ProfileByID resolves a profile identifier. Unknown identifiers fail
// closed to the first enumerated profile rather than erroring.
func ProfileByID(id string) TransportProfile {
	for _, p := range Profiles {
		if p.ID == id {
			return p
		}
	}
	return Profiles[0]
}

// EstimateEmissionsKg converts a distance and an emission factor into
// kilograms of CO2. Pure and total; not rounded here.
func EstimateEmissionsKg(distanceKm float64, profile TransportProfile) float64 {
	return distanceKm * profile.GramsPerKm / 1000
}
