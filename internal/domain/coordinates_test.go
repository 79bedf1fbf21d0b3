package domain

import (
	"math"
	"testing"
)

func TestHaversineSymmetry(t *testing.T) {
	a := Coordinates{Lat: 49.2827, Lng: -123.1207}
	b := Coordinates{Lat: 45.5017, Lng: -73.5673}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)

	if ab <= 0 {
		t.Fatalf("distance = %v, want positive", ab)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("HaversineKm not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineIdenticalPoints(t *testing.T) {
	p := Coordinates{Lat: 49.2827, Lng: -123.1207}

	if d := HaversineKm(p, p); d != 0 {
		t.Fatalf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Downtown Vancouver, due east along the same parallel.
	a := Coordinates{Lat: 49.2827, Lng: -123.1207}
	b := Coordinates{Lat: 49.2827, Lng: -123.0}

	d := HaversineKm(a, b)

	// ~8.76 km along the parallel at this latitude.
	if d < 8.5 || d > 9.0 {
		t.Fatalf("distance = %v km, want ~8.76", d)
	}
}

func TestHaversineNearAntipodalPoints(t *testing.T) {
	// Near-antipodal pairs can push the haversine term just above 1 in
	// float arithmetic; the distance must stay finite and non-negative,
	// capped by half the Earth's circumference.
	cases := []struct {
		a, b Coordinates
	}{
		{Coordinates{Lat: 0.0074, Lng: 10}, Coordinates{Lat: -0.0074, Lng: -170}},
		{Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 0, Lng: 180}},
		{Coordinates{Lat: 45, Lng: 90}, Coordinates{Lat: -45, Lng: -90}},
	}

	const halfCircumferenceKm = math.Pi * earthRadiusKm

	for _, tc := range cases {
		d := HaversineKm(tc.a, tc.b)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("HaversineKm(%v, %v) = %v, want finite", tc.a, tc.b, d)
		}
		if d < 0 || d > halfCircumferenceKm+1e-6 {
			t.Fatalf("HaversineKm(%v, %v) = %v, want within [0, %v]", tc.a, tc.b, d, halfCircumferenceKm)
		}
		if d < 19000 {
			t.Fatalf("HaversineKm(%v, %v) = %v km, want near-antipodal distance", tc.a, tc.b, d)
		}
	}
}

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{"in range", Coordinates{Lat: 49.2827, Lng: -123.1207}, true},
		{"lat too high", Coordinates{Lat: 90.1, Lng: 0}, false},
		{"lng too low", Coordinates{Lat: 0, Lng: -180.5}, false},
		{"boundaries", Coordinates{Lat: -90, Lng: 180}, true},
	}

	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFallbackLabel(t *testing.T) {
	c := Coordinates{Lat: 49.2827, Lng: -123.1207}

	want := "Location at 49.2827, -123.1207"
	if got := c.FallbackLabel(); got != want {
		t.Fatalf("FallbackLabel() = %q, want %q", got, want)
	}
}
