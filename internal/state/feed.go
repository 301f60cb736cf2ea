package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"mural/internal/domain"
)

// FeedErrorFallback is shown when a feed load fails without a server detail.
const FeedErrorFallback = "Erro ao carregar feed. Tenta de novo?"

// FeedState is a point-in-time copy of the feed container.
type FeedState struct {
	Posts   []domain.Post // newest first
	Loading bool
	Error   string // empty when there is no error
}

// Feed holds the viewer's posts and the status of the last feed load.
type Feed struct {
	client domain.FeedClient
	logger *slog.Logger

	mu      sync.RWMutex
	posts   []domain.Post
	loading bool
	errMsg  string
	loadSeq uint64

	subMu  sync.Mutex
	subs   map[int]func(FeedState)
	nextID int
}

// NewFeed returns an empty Feed backed by client. A nil logger means slog.Default().
func NewFeed(client domain.FeedClient, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		client: client,
		logger: logger,
		subs:   make(map[int]func(FeedState)),
	}
}

// Snapshot returns a deep copy of the current state.
func (f *Feed) Snapshot() FeedState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshotLocked()
}

func (f *Feed) snapshotLocked() FeedState {
	return FeedState{
		Posts:   domain.ClonePosts(f.posts),
		Loading: f.loading,
		Error:   f.errMsg,
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every state
// change. The returned func removes the listener.
func (f *Feed) Subscribe(fn func(FeedState)) (unsubscribe func()) {
	f.subMu.Lock()
	defer f.subMu.Unlock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	return func() {
		f.subMu.Lock()
		defer f.subMu.Unlock()
		delete(f.subs, id)
	}
}

// Restore replaces the post list with a previously saved one, without
// touching the request status.
func (f *Feed) Restore(posts []domain.Post) {
	f.update(func() bool {
		f.posts = domain.ClonePosts(posts)
		return true
	})
}

// LoadFeed fetches the feed and replaces the post list with it.
//
// On failure the list is kept and Error is set to the server's detail, or to
// FeedErrorFallback. Only the most recently issued load may change state: the
// result of an earlier load that settles late is discarded.
func (f *Feed) LoadFeed(ctx context.Context) error {
	var seq uint64
	f.update(func() bool {
		f.loadSeq++
		seq = f.loadSeq
		f.loading = true
		f.errMsg = ""
		return true
	})

	posts, err := f.client.FetchFeed(ctx)

	applied := false
	f.update(func() bool {
		if seq != f.loadSeq {
			return false
		}
		applied = true
		f.loading = false
		if err != nil {
			f.errMsg = FeedErrorFallback
			if detail, ok := domain.ServerDetail(err); ok {
				f.errMsg = detail
			}
			return true
		}
		f.posts = posts
		return true
	})

	if err != nil {
		f.logger.Error("load feed failed", "error", err)
		return fmt.Errorf("load feed: %w", err)
	}
	if !applied {
		f.logger.Debug("discarded stale feed response", "seq", seq)
		return nil
	}
	f.logger.Debug("feed loaded", "posts", len(posts))
	return nil
}

// CreatePost publishes content and puts the server's copy at the front of the
// list. Failures are logged and returned; they are not recorded in Error.
func (f *Feed) CreatePost(ctx context.Context, content string) error {
	post, err := f.client.CreatePost(ctx, content)
	if err != nil {
		f.logger.Error("create post failed", "error", err)
		return fmt.Errorf("create post: %w", err)
	}

	f.update(func() bool {
		f.posts = append([]domain.Post{post}, f.posts...)
		return true
	})
	return nil
}

// ToggleLike flips the viewer's like on post id and reconciles the local copy
// with the server response. Unknown ids are ignored. Failures are logged and
// returned; they are not recorded in Error.
func (f *Feed) ToggleLike(ctx context.Context, id domain.PostID) error {
	res, err := f.client.ToggleLike(ctx, id)
	if err != nil {
		f.logger.Error("toggle like failed", "post_id", id, "error", err)
		return fmt.Errorf("toggle like %d: %w", id, err)
	}

	found := false
	f.update(func() bool {
		for i := range f.posts {
			if f.posts[i].ID == id {
				res.Apply(&f.posts[i])
				found = true
				return true
			}
		}
		return false
	})
	if !found {
		f.logger.Debug("like toggled for post not in feed", "post_id", id)
	}
	return nil
}

// update runs mutate under the state lock and notifies subscribers when it
// reports a change. Listeners run outside the lock.
func (f *Feed) update(mutate func() bool) {
	f.mu.Lock()
	changed := mutate()
	var snap FeedState
	if changed {
		snap = f.snapshotLocked()
	}
	f.mu.Unlock()

	if changed {
		f.notify(snap)
	}
}

func (f *Feed) notify(snap FeedState) {
	f.subMu.Lock()
	fns := make([]func(FeedState), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
