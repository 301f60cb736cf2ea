package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"mural/internal/domain"
)

const preferencesDB = "preferences.db"

const preferencesSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PreferenceSQLiteStore persists string preferences in a SQLite database.
type PreferenceSQLiteStore struct {
	db *sql.DB
}

// OpenPreferenceSQLiteStore opens (creating if needed) the preferences
// database under dir. The caller should call Close when done.
func OpenPreferenceSQLiteStore(dir string) (*PreferenceSQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, preferencesDB))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection serialises writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(preferencesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PreferenceSQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *PreferenceSQLiteStore) Close() error {
	return s.db.Close()
}

// GetPreference returns the value stored under key.
func (s *PreferenceSQLiteStore) GetPreference(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference upserts value under key.
func (s *PreferenceSQLiteStore) SetPreference(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store preference %q: %w", key, err)
	}
	return nil
}

var _ domain.PreferenceStore = (*PreferenceSQLiteStore)(nil)
