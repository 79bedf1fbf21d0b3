package maps

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"trip-emissions-service/internal/adapters/cache"
	"trip-emissions-service/internal/domain"
)

// GeocodeCache is the provider's view of a persistent address cache.
// Satisfied by cache.SQLGeocodeCache; narrowed to an interface so the
// cache-before-upstream behavior is testable with a canned cache.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Location, bool, error)
	Put(ctx context.Context, address string, loc domain.Location) error
}

// GoogleMapsProvider implements the Geocoder and DirectionsProvider
// ports using the Google Maps Web APIs.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching (Postgres)
//   - Short-lived transit route caching (Redis)
//   - External API calls with retry/backoff
//
// Both caches are optional; a nil cache simply means every lookup goes
// upstream. The provider is safe for concurrent use.
type GoogleMapsProvider struct {
	session         *http.Client
	apiKey          string
	baseURL         string
	geocodeCache    GeocodeCache
	directionsCache *cache.RedisDirectionsCache
}

func NewGoogleMapsProvider(
	apiKey string,
	geocodeCache GeocodeCache,
	directionsCache *cache.RedisDirectionsCache,
) (*GoogleMapsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleMapsProvider{
		session:         &http.Client{Timeout: 10 * time.Second},
		apiKey:          apiKey,
		baseURL:         "https://maps.googleapis.com/maps/api",
		geocodeCache:    geocodeCache,
		directionsCache: directionsCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleMapsProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
