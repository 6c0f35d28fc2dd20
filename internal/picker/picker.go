package picker

import (
	"errors"
	"math/rand/v2"

	"github.com/ryan-gang/raindrop-random/internal/raindrop"
)

// ErrNoBookmarks is returned when there is nothing to choose from. It is a
// benign condition for an empty account, not a failure.
var ErrNoBookmarks = errors.New("no bookmarks available")

// Choose picks one bookmark uniformly at random
func Choose(bookmarks []raindrop.Bookmark) (raindrop.Bookmark, error) {
	if len(bookmarks) == 0 {
		return raindrop.Bookmark{}, ErrNoBookmarks
	}
	return bookmarks[rand.IntN(len(bookmarks))], nil
}
