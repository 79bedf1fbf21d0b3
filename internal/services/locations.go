package services

import (
	"context"
	"log"
	"strings"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"
)

// DescribeCoordinate resolves coordinates to a display address. When the
// reverse-geocoding lookup fails or returns nothing, the synthesized
// "Location at {lat}, {lng}" label is returned instead; dropping a
// marker never produces an error.
func DescribeCoordinate(ctx context.Context, geocoder ports.Geocoder, c domain.Coordinates) string {
	if geocoder != nil {
		addr, err := geocoder.ReverseGeocode(ctx, c)
		if err != nil {
			log.Printf("reverse geocode failed: %v", err)
		} else if strings.TrimSpace(addr) != "" {
			return addr
		}
	}
	return c.FallbackLabel()
}
