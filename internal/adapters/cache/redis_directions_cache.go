package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisDirectionsCache holds transit routes per origin/destination
// coordinate pair for a bounded TTL. Transit schedules drift, so this
// cache is short-lived, unlike the persistent geocode cache.
type RedisDirectionsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDirectionsCache(client *redis.Client, ttl time.Duration) *RedisDirectionsCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisDirectionsCache{Client: client, TTL: ttl}
}

// Coordinates are keyed at 5 decimal places (~1m), matching the
// precision markers move at.
func directionsKey(origin, destination domain.Coordinates) string {
	return fmt.Sprintf("directions:%.5f,%.5f|%.5f,%.5f",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

// Get returns the cached route for the pair, or nil on a miss.
func (c *RedisDirectionsCache) Get(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (*ports.TransitRoute, error) {
	if c.Client == nil {
		return nil, errors.New("directions cache: client is nil")
	}

	b, err := c.Client.Get(ctx, directionsKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get directions cache: %w", err)
	}

	var route ports.TransitRoute
	if err := json.Unmarshal(b, &route); err != nil {
		return nil, fmt.Errorf("get directions cache: decode route: %w", err)
	}

	return &route, nil
}

// Put stores one route for the pair with the cache TTL.
func (c *RedisDirectionsCache) Put(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	route *ports.TransitRoute,
) error {
	if c.Client == nil {
		return errors.New("directions cache: client is nil")
	}

	if route == nil {
		return errors.New("insert directions cache: route must be non-nil")
	}

	b, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert directions cache: encode route: %w", err)
	}

	if err := c.Client.Set(ctx, directionsKey(origin, destination), b, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	return nil
}
