package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"trip-emissions-service/internal/domain"
	"trip-emissions-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping normalized address
// strings to resolved locations. Address keys are expected to be
// normalized by the caller.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Get fetches the cached location for one address. The second return
// value reports whether the address was present.
func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (_ domain.Location, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Location{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lat, lng, formatted_address
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lng float64
	var formatted string
	if err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lng, &formatted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Location{}, false, nil
		}
		return domain.Location{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	loc := domain.Location{
		Coordinates: domain.Coordinates{Lat: lat, Lng: lng},
		Address:     formatted,
	}

	return loc, true, nil
}

// Put stores one address -> location mapping, replacing any previous
// entry for the same address.
func (s *SQLGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lng, formatted_address)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		formatted_address = EXCLUDED.formatted_address;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, loc.Lat, loc.Lng, loc.Address); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
