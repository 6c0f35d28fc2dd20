package readview

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-shiori/go-readability"
)

const fetchTimeout = 30 * time.Second
const excerptRunes = 600

// Article is the readable form of a bookmarked page
type Article struct {
	Title   string
	Byline  string
	Excerpt string
}

// Fetch downloads the page and extracts its readable content
func Fetch(url string) (Article, error) {
	article, err := readability.FromURL(url, fetchTimeout)
	if err != nil {
		return Article{}, err
	}
	return Article{
		Title:   article.Title,
		Byline:  article.Byline,
		Excerpt: Excerpt(article.TextContent, excerptRunes),
	}, nil
}

// Excerpt collapses whitespace and truncates the text to at most limit runes,
// appending an ellipsis when the text was cut.
func Excerpt(text string, limit int) string {
	collapsed := strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
