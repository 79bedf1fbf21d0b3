package domain

// A resolved place: coordinates plus a human-readable address.
// Produced by a map interaction or an address search; immutable for
// the lifetime of one calculation.
type Location struct {
	Coordinates
	Address string
}
