package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Preference store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

const defaultTimeout = 15 * time.Second

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        // data directory, e.g. $HOME/.mural
	APIBase string        // API base URL, e.g. http://127.0.0.1:8000/api/
	Store   string        // preference backend: StoreFile or StoreSQLite
	Timeout time.Duration // per-request timeout for the default HTTP client
	HTTP    *http.Client  // optional; built from Timeout when nil
}

// LoadConfig reads configuration from the environment. Variables found in
// envFiles (default ".env") are loaded first without overriding ones already
// set; missing env files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Home:    os.Getenv("MURAL_HOME"),
		APIBase: os.Getenv("MURAL_API_BASE"),
		Store:   getEnv("MURAL_STORE", StoreFile),
		Timeout: defaultTimeout,
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".mural")
	}
	if v := os.Getenv("MURAL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MURAL_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	return cfg, cfg.Validate()
}

// Validate reports configuration values NewWire cannot work with.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %q or %q)", c.Store, StoreFile, StoreSQLite)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
