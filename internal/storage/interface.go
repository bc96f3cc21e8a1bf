package storage

import "github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"

// Provider is the persistence repository: one durable snapshot per user,
// whole-object replace on write. GetSnapshot never fails for a missing
// user; it synthesizes defaults and back-fills fields absent from older
// snapshots. Storage-layer failures propagate to the caller untouched.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	GetSnapshot(userID string) (models.Snapshot, error)
	SaveSnapshot(userID string, snap models.Snapshot) error

	// Utils
	GetConfigPath() string
}
