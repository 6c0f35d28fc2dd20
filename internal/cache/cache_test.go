package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-gang/raindrop-random/internal/raindrop"
)

func testBookmarks() []raindrop.Bookmark {
	return []raindrop.Bookmark{
		{ID: 1, URL: "https://example.com/a", Title: "First", CollectionID: 7},
		{ID: 2, URL: "https://example.com/b", Title: "Second", CollectionID: 7},
		{ID: 3, URL: "https://example.com/c", Title: "Third", CollectionID: 9},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)

	saved := &Snapshot{
		FetchedAt:    time.Now(),
		CollectionID: 7,
		Bookmarks:    testBookmarks(),
	}
	require.NoError(t, store.Save(saved))

	loaded, ok := store.Load()
	require.True(t, ok, "fresh snapshot should load")
	assert.Equal(t, saved.Bookmarks, loaded.Bookmarks, "order and fields must survive the round trip")
	assert.Equal(t, saved.CollectionID, loaded.CollectionID)
	assert.WithinDuration(t, saved.FetchedAt, loaded.FetchedAt, time.Second)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)

	_, ok := store.Load()
	assert.False(t, ok)

	snapshot, err := store.Peek()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestStoreLoadExpired(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)

	require.NoError(t, store.Save(&Snapshot{
		FetchedAt: time.Now().Add(-6 * time.Minute),
		Bookmarks: testBookmarks(),
	}))

	_, ok := store.Load()
	assert.False(t, ok, "expired snapshot must be a miss")

	// Peek still sees the stale snapshot for inspection
	snapshot, err := store.Peek()
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Bookmarks, 3)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path, 5*time.Minute)
	_, ok := store.Load()
	assert.False(t, ok, "corrupt snapshot must be a miss")

	_, err := store.Peek()
	assert.Error(t, err)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)

	require.NoError(t, store.Save(&Snapshot{FetchedAt: time.Now(), Bookmarks: testBookmarks()}))
	require.NoError(t, store.Save(&Snapshot{
		FetchedAt: time.Now(),
		Bookmarks: testBookmarks()[:1],
	}))

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Len(t, loaded.Bookmarks, 1)
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "cache.json"), 5*time.Minute)
	require.NoError(t, store.Save(&Snapshot{FetchedAt: time.Now(), Bookmarks: testBookmarks()}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cache.json", entries[0].Name())
}

func TestStoreSaveEmptySnapshot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)
	require.NoError(t, store.Save(&Snapshot{FetchedAt: time.Now(), Bookmarks: []raindrop.Bookmark{}}))

	loaded, ok := store.Load()
	require.True(t, ok, "an empty snapshot is valid cache state")
	assert.Empty(t, loaded.Bookmarks)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cache.json"), 5*time.Minute)

	require.NoError(t, store.Clear(), "clearing an absent cache is fine")

	require.NoError(t, store.Save(&Snapshot{FetchedAt: time.Now(), Bookmarks: testBookmarks()}))
	require.NoError(t, store.Clear())

	snapshot, err := store.Peek()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}
