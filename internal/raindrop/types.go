package raindrop

// Bookmark represents a single saved link
type Bookmark struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	CollectionID int64  `json:"collection_id"`
}

// Collection represents a Raindrop.io grouping of bookmarks
type Collection struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
