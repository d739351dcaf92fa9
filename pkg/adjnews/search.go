package adjnews

import (
	"context"
	"net/url"
	"strconv"
)

const (
	searchPath         = "/api/search/query"
	defaultSearchLimit = 10
)

// SearchOptions tunes SemanticSearch. A nil *SearchOptions or zero value
// applies the documented defaults.
type SearchOptions struct {
	// Limit caps the number of results. Defaults to 10.
	Limit int
	// IncludeContext asks the API to attach relevance scores and match
	// context to each result.
	IncludeContext bool
}

// SemanticSearch finds markets conceptually related to query using the API's
// vector-embedding search, beyond plain keyword matching. query must be
// non-empty; that precondition belongs to the caller and is not validated
// here. The decoded JSON payload is returned as-is, e.g.
//
//	{"data": [...], "meta": {"query": "future inflation rates"}}
func (c *Client) SemanticSearch(ctx context.Context, query string, opts *SearchOptions) (any, error) {
	o := SearchOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Limit <= 0 {
		o.Limit = defaultSearchLimit
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(o.Limit))
	q.Set("include_context", strconv.FormatBool(o.IncludeContext))

	return c.session.get(ctx, searchPath, q)
}
