package adjnews

import (
	"context"
	"net/url"
	"strconv"
)

const (
	marketsPath         = "/api/markets"
	defaultMarketsLimit = 5
)

// Sort fields and directions accepted by the markets listing. The remote
// service is the authority on validation; unknown values are forwarded
// unchanged rather than rejected locally.
const (
	SortByCreatedAt   = "created_at"
	SortByUpdatedAt   = "updated_at"
	SortByEndDate     = "end_date"
	SortByProbability = "probability"
	SortByVolume      = "volume"
	SortByLiquidity   = "liquidity"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListMarketsOptions filters, sorts, and pages the markets listing.
//
// Value fields are always sent, with defaults applied when zero. Pointer
// fields are optional filters: nil means the parameter is omitted from the
// request entirely.
type ListMarketsOptions struct {
	// Limit is the number of results to return. Defaults to 5.
	Limit int
	// Offset skips results for pagination.
	Offset int
	// SortBy picks the sort field, one of the SortBy constants.
	// Defaults to SortByUpdatedAt.
	SortBy string
	// SortDir is SortAsc or SortDesc. Defaults to SortDesc.
	SortDir string
	// IncludeClosed includes closed markets in the listing.
	IncludeClosed bool
	// IncludeResolved includes resolved markets in the listing.
	IncludeResolved bool

	// Platform filters by platform name, e.g. "kalshi" or "polymarket".
	Platform *string
	// Status filters by market status, e.g. "active" or "resolved".
	Status *string
	// Category filters by market category.
	Category *string
	// MarketType filters by market type, e.g. "binary" or "scalar".
	MarketType *string
	// Keyword searches within question, description, and rules fields.
	Keyword *string
	// Tag filters by tag.
	Tag *string
	// CreatedAfter keeps markets created after this ISO timestamp.
	CreatedAfter *string
	// CreatedBefore keeps markets created before this ISO timestamp.
	CreatedBefore *string
	// ProbabilityMin keeps markets with probability >= this value.
	ProbabilityMin *float64
	// ProbabilityMax keeps markets with probability <= this value.
	ProbabilityMax *float64
}

// ListMarkets retrieves markets with filtering, sorting, and pagination.
// A nil *ListMarketsOptions lists with all defaults. The decoded JSON
// payload is returned as-is, e.g.
//
//	{"data": [...], "meta": {"count": 1250, "limit": 100, "offset": 0, "hasMore": true}}
func (c *Client) ListMarkets(ctx context.Context, opts *ListMarketsOptions) (any, error) {
	o := ListMarketsOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Limit <= 0 {
		o.Limit = defaultMarketsLimit
	}
	if o.SortBy == "" {
		o.SortBy = SortByUpdatedAt
	}
	if o.SortDir == "" {
		o.SortDir = SortDesc
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(o.Limit))
	q.Set("offset", strconv.Itoa(o.Offset))
	q.Set("sort_by", o.SortBy)
	q.Set("sort_dir", o.SortDir)
	q.Set("include_closed", strconv.FormatBool(o.IncludeClosed))
	q.Set("include_resolved", strconv.FormatBool(o.IncludeResolved))

	setOptionalString(q, "platform", o.Platform)
	setOptionalString(q, "status", o.Status)
	setOptionalString(q, "category", o.Category)
	setOptionalString(q, "market_type", o.MarketType)
	setOptionalString(q, "keyword", o.Keyword)
	setOptionalString(q, "tag", o.Tag)
	setOptionalString(q, "created_after", o.CreatedAfter)
	setOptionalString(q, "created_before", o.CreatedBefore)
	setOptionalFloat(q, "probability_min", o.ProbabilityMin)
	setOptionalFloat(q, "probability_max", o.ProbabilityMax)

	return c.session.get(ctx, marketsPath, q)
}
