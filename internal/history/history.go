// Package history persists the locations a user has fetched forecasts
// for, so the search screen can offer them again. Forecast data itself is
// never stored; a snapshot lives only in memory for the current session.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one remembered location.
type Entry struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	LastUsed  time.Time
}

// Store is the minimal persistence surface the UI needs.
type Store interface {
	Record(name string, lat, lon float64) error
	Recent(limit int) ([]Entry, error)
	Close() error
}

// SQLiteStore implements Store on a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// DBPath returns the default path of the history database.
func DBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "skycast.db")
	}
	return filepath.Join(home, ".skycast", "skycast.db")
}

// Open opens (and if necessary creates) the history database at path.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// ensureSchema creates the locations table if it does not exist.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS locations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			last_used DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_locations_name ON locations(name);
	`)
	if err != nil {
		return fmt.Errorf("creating locations table: %w", err)
	}
	return nil
}

// Record upserts a location, refreshing its last-used time.
func (s *SQLiteStore) Record(name string, lat, lon float64) error {
	if name == "" {
		name = fmt.Sprintf("%.4f, %.4f", lat, lon)
	}

	_, err := s.db.Exec(`
		INSERT INTO locations (name, latitude, longitude, last_used)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			last_used = CURRENT_TIMESTAMP
	`, name, lat, lon)
	if err != nil {
		return fmt.Errorf("recording location %q: %w", name, err)
	}
	return nil
}

// Recent returns up to limit locations, most recently used first.
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, latitude, longitude, last_used
		FROM locations
		ORDER BY last_used DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent locations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Latitude, &e.Longitude, &e.LastUsed); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading location rows: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
