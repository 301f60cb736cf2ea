package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"mural/internal/api"
	"mural/internal/domain"
	"mural/internal/state"
	"mural/internal/store"
	"mural/internal/surface"
)

// Wire bundles all stores, clients and state containers for the CLI.
type Wire struct {
	Config    Config
	Prefs     domain.PreferenceStore
	Snapshots domain.SnapshotStore
	Client    domain.FeedClient
	Root      *surface.Root
	Feed      *state.Feed
	Theme     *state.Theme

	closers []func() error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	w := &Wire{Config: cfg, Root: surface.NewRoot()}

	switch cfg.Store {
	case StoreSQLite:
		db, err := store.OpenPreferenceSQLiteStore(cfg.Home)
		if err != nil {
			return nil, err
		}
		w.Prefs = db
		w.closers = append(w.closers, db.Close)
	default:
		w.Prefs = store.NewPreferenceFileStore(cfg.Home)
	}
	w.Snapshots = store.NewFeedSnapshotStore(cfg.Home)

	// Outbound HTTP; without a base URL every API call fails with ErrNoAPIBase.
	if cfg.APIBase != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		w.Client = api.NewHTTP(cfg.APIBase, httpClient)
	} else {
		w.Client = offlineClient{}
	}

	w.Feed = state.NewFeed(w.Client, logger.With("container", "posts"))
	theme, err := state.NewTheme(w.Prefs, w.Root, logger.With("container", "theme"))
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("init theme: %w", err)
	}
	w.Theme = theme
	return w, nil
}

// Online reports whether an API base URL is configured.
func (w *Wire) Online() bool {
	_, offline := w.Client.(offlineClient)
	return !offline
}

// Close releases resources held by the stores.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c())
	}
	w.closers = nil
	return errors.Join(errs...)
}

type offlineClient struct{}

func (offlineClient) FetchFeed(context.Context) ([]domain.Post, error) {
	return nil, domain.ErrNoAPIBase
}

func (offlineClient) CreatePost(context.Context, string) (domain.Post, error) {
	return domain.Post{}, domain.ErrNoAPIBase
}

func (offlineClient) ToggleLike(context.Context, domain.PostID) (domain.LikeResult, error) {
	return domain.LikeResult{}, domain.ErrNoAPIBase
}
