package news

import (
	"strconv"
	"strings"
)

// PageSize is the number of articles requested per upstream page.
const PageSize = 12

// DefaultCategory is used for headline requests without a category.
const DefaultCategory = "general"

// Mode selects the upstream endpoint.
type Mode string

const (
	ModeSearch    Mode = "search"
	ModeHeadlines Mode = "headlines"
)

// Query is a normalized upstream request.
type Query struct {
	Mode Mode
	// Term is the search text in ModeSearch and the category in ModeHeadlines.
	Term string
	Page int
}

// NewQuery normalizes request parameters. A non-blank search selects
// ModeSearch and the category is ignored; otherwise the category (lower-cased,
// defaulting to "general") selects ModeHeadlines. Pages below 1 become 1.
func NewQuery(category, search string, page int) Query {
	if page < 1 {
		page = 1
	}
	if s := strings.TrimSpace(search); s != "" {
		return Query{Mode: ModeSearch, Term: s, Page: page}
	}
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		c = DefaultCategory
	}
	return Query{Mode: ModeHeadlines, Term: c, Page: page}
}

// Fingerprint is the cache key for q. The mode is part of the key, so the same
// text searched and used as a category never collide, and the page is the
// last segment so a term containing ':' cannot alias another page.
func (q Query) Fingerprint() string {
	return "news:" + string(q.Mode) + ":" + q.Term + ":" + strconv.Itoa(q.Page)
}
