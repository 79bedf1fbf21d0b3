package maps

import (
	"context"
	"net/http"
	"testing"
	"trip-emissions-service/internal/domain"
)

// In-memory GeocodeCache recording reads and writes.
type cannedGeocodeCache struct {
	entries map[string]domain.Location
	puts    map[string]domain.Location
}

func (c *cannedGeocodeCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	loc, ok := c.entries[address]
	return loc, ok, nil
}

func (c *cannedGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if c.puts == nil {
		c.puts = map[string]domain.Location{}
	}
	c.puts[address] = loc
	return nil
}

const geocodePayload = `{
	"status": "OK",
	"results": [{
		"formatted_address": "800 Robson St, Vancouver, BC",
		"geometry": {"location": {"lat": 49.2827, "lng": -123.1207}}
	}]
}`

func TestGeocodeCacheHitSkipsUpstream(t *testing.T) {
	g := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream called despite cache hit")
	})

	cached := domain.Location{
		Coordinates: domain.Coordinates{Lat: 49.2827, Lng: -123.1207},
		Address:     "800 Robson St, Vancouver, BC",
	}
	g.geocodeCache = &cannedGeocodeCache{
		entries: map[string]domain.Location{"robson street": cached},
	}

	got, err := g.Geocode(context.Background(), "  robson   street ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cached {
		t.Fatalf("location = %+v, want cached %+v", got, cached)
	}
}

func TestGeocodeCacheMissFetchesAndStores(t *testing.T) {
	g := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("address"); got != "robson street" {
			t.Errorf("address = %q, want normalized", got)
		}
		w.Write([]byte(geocodePayload))
	})

	cc := &cannedGeocodeCache{entries: map[string]domain.Location{}}
	g.geocodeCache = cc

	got, err := g.Geocode(context.Background(), "robson street")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Address != "800 Robson St, Vancouver, BC" {
		t.Fatalf("address = %q", got.Address)
	}

	stored, ok := cc.puts["robson street"]
	if !ok {
		t.Fatal("resolved location was not written back to the cache")
	}
	if stored != got {
		t.Fatalf("cached %+v, returned %+v", stored, got)
	}
}

func TestGeocodeNoResultsIsAnError(t *testing.T) {
	g := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	if _, err := g.Geocode(context.Background(), "nowhere at all"); err == nil {
		t.Fatal("expected error for ZERO_RESULTS geocode")
	}
}
