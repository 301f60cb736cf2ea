package domain

import "context"

// FeedClient is how the feed container talks to the posts API.
type FeedClient interface {
	FetchFeed(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, content string) (Post, error)
	ToggleLike(ctx context.Context, id PostID) (LikeResult, error)
}

// PreferenceStore is a string key-value store that survives restarts.
type PreferenceStore interface {
	// GetPreference returns the stored value and whether the key was present.
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
}

// SnapshotStore keeps the last known feed between CLI invocations.
type SnapshotStore interface {
	SaveSnapshot(passphrase string, posts []Post) error
	LoadSnapshot(passphrase string) ([]Post, bool, error)
}

// ClassList is the document-root class attribute the presentation layer
// styles itself from.
type ClassList interface {
	Clear()
	Add(class string)
	Classes() []string
}
