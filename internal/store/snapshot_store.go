package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"mural/internal/domain"
)

const snapshotFile = "feed_snapshot.json"

type feedSnapshot struct {
	SavedAt time.Time     `json:"saved_at"`
	Posts   []domain.Post `json:"posts,omitempty"`
	Sealed  *sealedBlob   `json:"sealed,omitempty"`
}

// FeedSnapshotStore keeps the last known feed on disk. With a non-empty
// passphrase the post list is encrypted at rest.
type FeedSnapshotStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewFeedSnapshotStore returns a FeedSnapshotStore rooted at dir.
func NewFeedSnapshotStore(dir string) *FeedSnapshotStore {
	return &FeedSnapshotStore{dir: dir, now: time.Now}
}

// SaveSnapshot replaces the stored feed with posts.
func (s *FeedSnapshotStore) SaveSnapshot(passphrase string, posts []domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := feedSnapshot{SavedAt: s.now().UTC()}
	if passphrase == "" {
		snap.Posts = posts
	} else {
		raw, err := json.Marshal(posts)
		if err != nil {
			return fmt.Errorf("encode posts: %w", err)
		}
		blob, err := seal(passphrase, raw)
		if err != nil {
			return fmt.Errorf("seal snapshot: %w", err)
		}
		snap.Sealed = &blob
	}
	return writeJSON(filepath.Join(s.dir, snapshotFile), snap, 0o600)
}

// LoadSnapshot returns the stored feed and whether one was present.
func (s *FeedSnapshotStore) LoadSnapshot(passphrase string) ([]domain.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap feedSnapshot
	ok, err := readJSON(filepath.Join(s.dir, snapshotFile), &snap)
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	if snap.Sealed == nil {
		return snap.Posts, true, nil
	}
	if passphrase == "" {
		return nil, false, domain.ErrSnapshotSealed
	}

	raw, err := open(passphrase, *snap.Sealed)
	if err != nil {
		return nil, false, err
	}
	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false, fmt.Errorf("decode posts: %w", err)
	}
	return posts, true, nil
}

// Compile-time assertion that FeedSnapshotStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*FeedSnapshotStore)(nil)
