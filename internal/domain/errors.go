package domain

import "errors"

var (
	// ErrNoAPIBase is returned when a command needs the API but none is configured.
	ErrNoAPIBase = errors.New("no API base URL configured")

	// ErrSnapshotSealed is returned when a sealed snapshot is read without a passphrase.
	ErrSnapshotSealed = errors.New("feed snapshot is sealed; passphrase required")
)

// ServerDetail returns the human-readable detail a server attached to err,
// if any error in the chain carries one.
func ServerDetail(err error) (string, bool) {
	var d interface{ ServerDetail() string }
	if errors.As(err, &d) {
		if msg := d.ServerDetail(); msg != "" {
			return msg, true
		}
	}
	return "", false
}
