package search

import (
	"strconv"
	"strings"
)

// Parameter keys in the order they are sent to the search API.
const (
	KeyQuery     = "q"
	KeyCategory  = "category"
	KeyAuthor    = "author"
	KeyPublished = "published"
	KeyPage      = "page"
)

// Accepted values of the published filter. The empty string means the
// filter is not applied.
const (
	PublishedAny   = ""
	PublishedTrue  = "true"
	PublishedFalse = "false"
)

// Params represents one search submission.
//
// A Params value is built for every search and never mutated afterwards;
// callers derive a new value with the With* helpers instead of sharing one
// record between requests.
type Params struct {
	// Query is the free-text search term. Empty means match everything.
	Query string `json:"q"`

	// Category restricts results to one category. Empty means unrestricted.
	Category string `json:"category"`

	// Author restricts results to one author. Empty means unrestricted.
	Author string `json:"author"`

	// Published is "true", "false" or empty for unrestricted.
	Published string `json:"published"`

	// Page is forwarded to the API only when non-zero.
	Page int `json:"page"`
}

// Normalize returns a copy with the free-text query trimmed, which is what
// the page does with the text box content before searching. A published
// value other than "true" or "false" and a negative page are cleared.
func (p Params) Normalize() Params {
	p.Query = strings.TrimSpace(p.Query)
	if p.Published != PublishedTrue && p.Published != PublishedFalse {
		p.Published = PublishedAny
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

// WithQuery returns a copy of p searching for q.
func (p Params) WithQuery(q string) Params {
	p.Query = q
	return p
}

// Encode builds the query string sent to the search endpoint.
//
// Keys appear in the fixed order q, category, author, published, page.
// Parameters with an empty value (or a zero page) are omitted, and values are
// percent-encoded with EscapeComponent. Pairs are joined with "&".
func (p Params) Encode() string {
	pairs := make([]string, 0, 5)
	add := func(key, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, key+"="+EscapeComponent(value))
	}

	add(KeyQuery, p.Query)
	add(KeyCategory, p.Category)
	add(KeyAuthor, p.Author)
	add(KeyPublished, p.Published)
	if p.Page != 0 {
		add(KeyPage, strconv.Itoa(p.Page))
	}

	return strings.Join(pairs, "&")
}

// IsZero reports whether no field restricts the search.
func (p Params) IsZero() bool {
	return p == Params{}
}

// ParseParams converts HTTP query parameters into Params.
//
// Supported parameters:
//   - q: search text (trimmed)
//   - category, author: filter values, passed through verbatim
//   - published: "true" or "false"; anything else means unrestricted
//   - page: non-negative integer; invalid values are ignored
func ParseParams(values map[string][]string) Params {
	first := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	params := Params{
		Query:    strings.TrimSpace(first(KeyQuery)),
		Category: first(KeyCategory),
		Author:   first(KeyAuthor),
	}

	switch first(KeyPublished) {
	case PublishedTrue:
		params.Published = PublishedTrue
	case PublishedFalse:
		params.Published = PublishedFalse
	}

	if pageStr := first(KeyPage); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			params.Page = parsed
		}
	}

	return params
}
