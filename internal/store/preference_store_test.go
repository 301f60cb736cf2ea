package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mural/internal/domain"
	"mural/internal/store"
)

func testPreferenceStore(t *testing.T, open func(dir string) domain.PreferenceStore) {
	t.Helper()
	dir := t.TempDir()
	prefs := open(dir)

	_, ok, err := prefs.GetPreference("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, prefs.SetPreference("theme", "escuro"))
	require.NoError(t, prefs.SetPreference("lang", "pt-BR"))
	require.NoError(t, prefs.SetPreference("theme", "claro"))

	// A fresh handle on the same directory sees the stored values.
	reopened := open(dir)
	v, ok, err := reopened.GetPreference("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "claro", v)

	v, ok, err = reopened.GetPreference("lang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pt-BR", v)
}

func TestPreferenceFileStore(t *testing.T) {
	testPreferenceStore(t, func(dir string) domain.PreferenceStore {
		return store.NewPreferenceFileStore(dir)
	})
}

func TestPreferenceSQLiteStore(t *testing.T) {
	testPreferenceStore(t, func(dir string) domain.PreferenceStore {
		s, err := store.OpenPreferenceSQLiteStore(dir)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestPreferenceFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{"), 0o600))

	prefs := store.NewPreferenceFileStore(dir)
	_, _, err := prefs.GetPreference("theme")
	assert.Error(t, err)
	assert.Error(t, prefs.SetPreference("theme", "claro"))
}

func TestPreferenceFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	prefs := store.NewPreferenceFileStore(dir)
	require.NoError(t, prefs.SetPreference("theme", "escuro"))

	info, err := os.Stat(filepath.Join(dir, "preferences.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
