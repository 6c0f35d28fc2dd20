package raindrop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.raindrop.io/rest/v1"
const DefaultTimeout = 10 * time.Second

// AllCollections is the pseudo collection id covering every bookmark in the account.
const AllCollections int64 = 0

// ErrUnauthorized is returned when the API rejects the token. It signals a
// configuration problem, not a transient failure.
var ErrUnauthorized = errors.New("raindrop.io rejected the token")

// Client is a read-only client for the Raindrop.io REST API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, DefaultBaseURL)
}

// NewClientWithBaseURL allows tests to point the client at a fake server
func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

type raindropItem struct {
	ID         int64  `json:"_id"`
	Link       string `json:"link"`
	Title      string `json:"title"`
	Collection struct {
		ID int64 `json:"$id"`
	} `json:"collection"`
}

type raindropsResponse struct {
	Items []raindropItem `json:"items"`
}

type collectionItem struct {
	ID    int64  `json:"_id"`
	Title string `json:"title"`
}

type collectionsResponse struct {
	Items []collectionItem `json:"items"`
}

// Raindrops lists the bookmarks of a collection, newest first, preserving the
// service's ordering. An account with zero bookmarks yields an empty slice,
// not an error.
func (c *Client) Raindrops(ctx context.Context, collectionID int64, perPage int) ([]Bookmark, error) {
	query := url.Values{}
	query.Set("sort", "-created")
	query.Set("perpage", strconv.Itoa(perPage))

	var response raindropsResponse
	endpoint := fmt.Sprintf("/raindrops/%d", collectionID)
	if err := c.get(ctx, endpoint, query, &response); err != nil {
		return nil, err
	}

	bookmarks := make([]Bookmark, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Link == "" {
			continue
		}
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		bookmarks = append(bookmarks, Bookmark{
			ID:           item.ID,
			URL:          item.Link,
			Title:        title,
			CollectionID: item.Collection.ID,
		})
	}
	return bookmarks, nil
}

// Collections lists the account's collections, with the pseudo "All Bookmarks"
// entry appended last.
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	var response collectionsResponse
	if err := c.get(ctx, "/collections", nil, &response); err != nil {
		return nil, err
	}

	collections := make([]Collection, 0, len(response.Items)+1)
	for _, item := range response.Items {
		title := item.Title
		if title == "" {
			title = "Untitled Collection"
		}
		collections = append(collections, Collection{ID: item.ID, Title: title})
	}
	collections = append(collections, Collection{ID: AllCollections, Title: "All Bookmarks"})
	return collections, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", endpoint, ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("requesting %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}
