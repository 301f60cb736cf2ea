package commands

import "fmt"

// restoreFeed seeds the feed container from the local snapshot, if any.
func restoreFeed() error {
	posts, ok, err := appCtx.Snapshots.LoadSnapshot(passphrase)
	if err != nil {
		return fmt.Errorf("load feed snapshot: %w", err)
	}
	if ok {
		appCtx.Feed.Restore(posts)
	}
	return nil
}

// saveFeed writes the feed container's posts back to the local snapshot.
func saveFeed() error {
	if err := appCtx.Snapshots.SaveSnapshot(passphrase, appCtx.Feed.Snapshot().Posts); err != nil {
		return fmt.Errorf("save feed snapshot: %w", err)
	}
	return nil
}
