package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ryan-gang/raindrop-random/internal/raindrop"
)

// Fetcher retrieves the current bookmark listing from the remote service
type Fetcher interface {
	Raindrops(ctx context.Context, collectionID int64, perPage int) ([]raindrop.Bookmark, error)
}

// Manager answers bookmark listings from the local snapshot when it is fresh
// and refreshes it from the Fetcher otherwise.
type Manager struct {
	store   *Store
	fetcher Fetcher
	perPage int
	log     zerolog.Logger
}

func NewManager(store *Store, fetcher Fetcher, perPage int, log zerolog.Logger) *Manager {
	return &Manager{
		store:   store,
		fetcher: fetcher,
		perPage: perPage,
		log:     log,
	}
}

// Bookmarks returns the bookmarks of the given collection. A fresh snapshot
// for the same collection is served without a network call; otherwise one
// fetch runs and, on success, replaces the snapshot. An empty fetch result is
// a valid state and is cached like any other. On fetch failure the previous
// snapshot file is left untouched and the error is propagated.
func (m *Manager) Bookmarks(ctx context.Context, collectionID int64, force bool) ([]raindrop.Bookmark, error) {
	if !force {
		if snapshot, ok := m.store.Load(); ok && snapshot.CollectionID == collectionID {
			m.log.Info().
				Int64("collection", collectionID).
				Int("bookmarks", len(snapshot.Bookmarks)).
				Dur("age", snapshot.Age()).
				Msg("cache hit")
			return snapshot.Bookmarks, nil
		}
	}

	bookmarks, err := m.fetcher.Raindrops(ctx, collectionID, m.perPage)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		FetchedAt:    time.Now(),
		CollectionID: collectionID,
		Bookmarks:    bookmarks,
	}
	if err := m.store.Save(snapshot); err != nil {
		// A failed cache write only costs the next invocation a refetch
		m.log.Error().Err(err).Str("path", m.store.Path).Msg("failed to save cache snapshot")
	} else {
		m.log.Info().
			Int64("collection", collectionID).
			Int("bookmarks", len(bookmarks)).
			Msg("cache refreshed")
	}
	return bookmarks, nil
}
