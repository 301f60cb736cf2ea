// Package store provides local persistence for mural's client state.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Preferences as a JSON file (PreferenceFileStore)
//   - Preferences in a SQLite database (PreferenceSQLiteStore)
//   - The last known feed (FeedSnapshotStore), optionally sealed with a
//     passphrase
//
// All methods are concurrency-safe via internal locking. Files live under the
// configured home directory and are replaced atomically.
package store
