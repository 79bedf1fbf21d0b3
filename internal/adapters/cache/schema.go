package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the geocode cache table if it does not exist.
// Run once at startup or via cachetool.
func InitSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address           TEXT PRIMARY KEY,
		lat               DOUBLE PRECISION NOT NULL,
		lng               DOUBLE PRECISION NOT NULL,
		formatted_address TEXT NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache table: %w", err)
	}

	return nil
}
