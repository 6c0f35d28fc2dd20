package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ryan-gang/raindrop-random/internal/raindrop"
)

// Snapshot is the locally persisted copy of a bookmark listing
type Snapshot struct {
	FetchedAt    time.Time           `json:"fetched_at"`
	CollectionID int64               `json:"collection_id"`
	Bookmarks    []raindrop.Bookmark `json:"bookmarks"`
}

// Age returns how long ago the snapshot was fetched
func (s *Snapshot) Age() time.Duration {
	return time.Since(s.FetchedAt)
}

// Store persists one Snapshot in a single JSON file with a freshness bound.
// A file that is absent, unparseable or older than TTL counts as a miss.
type Store struct {
	Path string
	TTL  time.Duration
}

func NewStore(path string, ttl time.Duration) *Store {
	return &Store{Path: path, TTL: ttl}
}

// Load returns the snapshot and true on a fresh hit, nil and false otherwise.
func (s *Store) Load() (*Snapshot, bool) {
	snapshot, err := s.Peek()
	if err != nil || snapshot == nil {
		return nil, false
	}
	if snapshot.Age() >= s.TTL {
		return nil, false
	}
	return snapshot, true
}

// Peek reads the snapshot regardless of freshness. A missing file yields
// (nil, nil); a corrupt one yields an error.
func (s *Store) Peek() (*Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache file: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing cache file: %w", err)
	}
	return &snapshot, nil
}

// Save writes the snapshot with an all-or-nothing replace: marshal to a temp
// file in the target directory, then rename over the old file. A failure
// leaves any previous snapshot untouched.
func (s *Store) Save(snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Clear removes the snapshot file. Clearing an absent cache is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache file: %w", err)
	}
	return nil
}
