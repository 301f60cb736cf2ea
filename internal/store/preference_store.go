package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"mural/internal/domain"
)

const preferencesFile = "preferences.json"

// PreferenceFileStore persists string preferences as a JSON object on disk.
type PreferenceFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPreferenceFileStore returns a PreferenceFileStore rooted at dir.
func NewPreferenceFileStore(dir string) *PreferenceFileStore {
	return &PreferenceFileStore{dir: dir}
}

// GetPreference returns the value stored under key.
func (s *PreferenceFileStore) GetPreference(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := map[string]string{}
	if _, err := readJSON(filepath.Join(s.dir, preferencesFile), &prefs); err != nil {
		return "", false, fmt.Errorf("read preferences: %w", err)
	}
	v, ok := prefs[key]
	return v, ok, nil
}

// SetPreference stores value under key, keeping the other keys.
func (s *PreferenceFileStore) SetPreference(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, preferencesFile)
	prefs := map[string]string{}
	if _, err := readJSON(path, &prefs); err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	prefs[key] = value
	return writeJSON(path, prefs, 0o600)
}

// Compile-time assertion that PreferenceFileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*PreferenceFileStore)(nil)
