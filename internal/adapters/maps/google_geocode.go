package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/platform/obs"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address to coordinates and a formatted
// address via /geocode/json, consulting the persistent cache first.
func (g *GoogleMapsProvider) Geocode(ctx context.Context, address string) (_ domain.Location, err error) {
	defer obs.Time(ctx, "google.Geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return domain.Location{}, fmt.Errorf("geocode: address must be non-empty")
	}

	if g.geocodeCache != nil {
		loc, ok, err := g.geocodeCache.Get(ctx, norm)
		if err != nil {
			return domain.Location{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return loc, nil
		}
	}

	params := url.Values{}
	params.Set("address", norm)

	decoded, err := g.fetchGeocode(ctx, params)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.Location{}, fmt.Errorf("geocode %q: no results (status %s)", norm, decoded.Status)
	}

	top := decoded.Results[0]
	loc := domain.Location{
		Coordinates: domain.Coordinates{
			Lat: top.Geometry.Location.Lat,
			Lng: top.Geometry.Location.Lng,
		},
		Address: top.FormattedAddress,
	}

	if g.geocodeCache != nil {
		if err := g.geocodeCache.Put(ctx, norm, loc); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return loc, nil
}

// ReverseGeocode resolves coordinates to a formatted address. Callers
// substitute the synthesized fallback label when this returns an error.
func (g *GoogleMapsProvider) ReverseGeocode(ctx context.Context, c domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "google.ReverseGeocode")(&err)

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", c.Lat, c.Lng))

	decoded, err := g.fetchGeocode(ctx, params)
	if err != nil {
		return "", fmt.Errorf("reverse geocode %.4f,%.4f: %w", c.Lat, c.Lng, err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return "", fmt.Errorf("reverse geocode %.4f,%.4f: no results (status %s)", c.Lat, c.Lng, decoded.Status)
	}

	return decoded.Results[0].FormattedAddress, nil
}

func (g *GoogleMapsProvider) fetchGeocode(ctx context.Context, params url.Values) (*geocodeResponse, error) {
	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		p := url.Values{}
		for k, v := range params {
			p[k] = v
		}
		return g.newRequest(ctx, "/geocode/json", p)
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	return &decoded, nil
}
