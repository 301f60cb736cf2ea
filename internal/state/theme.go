package state

import (
	"fmt"
	"log/slog"
	"sync"

	"mural/internal/domain"
)

const (
	// ThemeKey is the preference key the theme is stored under.
	ThemeKey = "theme"

	// DefaultTheme applies when no theme has been stored yet.
	DefaultTheme = "claro"
)

// Theme holds the visual preference and mirrors it to the preference store
// and the document-root class list.
type Theme struct {
	prefs  domain.PreferenceStore
	root   domain.ClassList
	logger *slog.Logger

	mu    sync.RWMutex
	theme string
}

// NewTheme loads the stored theme (or DefaultTheme) and applies it once so the
// store and the root class list agree with it from the start.
func NewTheme(prefs domain.PreferenceStore, root domain.ClassList, logger *slog.Logger) (*Theme, error) {
	if logger == nil {
		logger = slog.Default()
	}
	current, ok, err := prefs.GetPreference(ThemeKey)
	if err != nil {
		return nil, fmt.Errorf("read theme preference: %w", err)
	}
	if !ok || current == "" {
		current = DefaultTheme
	}

	t := &Theme{prefs: prefs, root: root, logger: logger}
	if err := t.SetTheme(current); err != nil {
		return nil, err
	}
	return t, nil
}

// Theme returns the current value.
func (t *Theme) Theme() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.theme
}

// SetTheme switches to value, persists it, and makes it the only root class.
// Any string is accepted.
func (t *Theme) SetTheme(value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.theme = value
	if err := t.prefs.SetPreference(ThemeKey, value); err != nil {
		t.logger.Error("persist theme failed", "theme", value, "error", err)
		return fmt.Errorf("persist theme: %w", err)
	}

	t.root.Clear()
	t.root.Add(value)
	t.logger.Debug("theme applied", "theme", value)
	return nil
}
