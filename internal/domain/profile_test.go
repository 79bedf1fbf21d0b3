package domain

import "testing"

func TestProfileByID(t *testing.T) {
	p := ProfileByID("electric-car")
	if p.Name != "Electric Car" {
		t.Fatalf("profile name = %q, want %q", p.Name, "Electric Car")
	}
}

func TestProfileByIDUnknownFallsBackToFirst(t *testing.T) {
	// Unknown identifiers fail closed to the first enumerated profile.
	p := ProfileByID("hoverboard")
	if p.ID != Profiles[0].ID {
		t.Fatalf("fallback profile = %q, want %q", p.ID, Profiles[0].ID)
	}

	if p := ProfileByID(""); p.ID != Profiles[0].ID {
		t.Fatalf("empty id fallback profile = %q, want %q", p.ID, Profiles[0].ID)
	}
}

func TestEstimateEmissionsKg(t *testing.T) {
	gasCar := ProfileByID("gas-car")

	if got := EstimateEmissionsKg(10, gasCar); got != 1.7 {
		t.Fatalf("emissions for 10 km = %v, want 1.7", got)
	}
	if got := EstimateEmissionsKg(0, gasCar); got != 0 {
		t.Fatalf("emissions for 0 km = %v, want 0", got)
	}
}

func TestEstimateEmissionsMonotonic(t *testing.T) {
	for _, p := range Profiles {
		prev := -1.0
		for _, d := range []float64{0, 0.5, 1, 10, 250, 10000} {
			e := EstimateEmissionsKg(d, p)
			if e < 0 {
				t.Fatalf("%s: emissions for %v km = %v, want non-negative", p.ID, d, e)
			}
			if e < prev {
				t.Fatalf("%s: emissions decreased from %v to %v", p.ID, prev, e)
			}
			prev = e
		}
	}
}
