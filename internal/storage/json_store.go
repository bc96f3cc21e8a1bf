package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

const storeVersion = 1

type store struct {
	Version   int                        `json:"version"`
	Snapshots map[string]models.Snapshot `json:"snapshots"`
}

// JSONStore persists all user snapshots in a single JSON file.
type JSONStore struct {
	path  string
	store *store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &store{
		Version:   storeVersion,
		Snapshots: make(map[string]models.Snapshot),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tracker init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Snapshots == nil {
		s.store.Snapshots = make(map[string]models.Snapshot)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// GetSnapshot returns the user's snapshot, synthesizing defaults for a new
// user and back-filling fields missing from an older one. The synthesized
// snapshot is not persisted until the first save.
func (s *JSONStore) GetSnapshot(userID string) (models.Snapshot, error) {
	if s.store == nil {
		return models.Snapshot{}, fmt.Errorf("storage not loaded")
	}

	snap, ok := s.store.Snapshots[userID]
	if !ok {
		return defaultSnapshot(userID), nil
	}

	return Backfill(snap, userID), nil
}

// SaveSnapshot replaces the stored snapshot for the user in one write.
func (s *JSONStore) SaveSnapshot(userID string, snap models.Snapshot) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	snap.UserID = userID
	s.store.Snapshots[userID] = snap
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
