package domain

// One ride on a single scheduled transit vehicle, annotated with the
// walking steps immediately around it. Segments have no identity beyond
// their position in the itinerary.
type TransitSegment struct {
	Mode          string
	DepartureStop string
	ArrivalStop   string
	Distance      string
	WalkingBefore string
	WalkingAfter  string
}

// The outcome of one calculation. Distance and emissions are rounded to
// two decimal places when this value is produced; it is held only for
// display until the next calculation overwrites it.
type EmissionResult struct {
	DistanceKm  float64
	EmissionsKg float64
	Profile     TransportProfile
	Segments    []TransitSegment
	Narrative   string
}
