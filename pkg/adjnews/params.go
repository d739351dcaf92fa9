package adjnews

import (
	"net/url"
	"strconv"
)

// String returns a pointer to s, for filling optional filter fields.
func String(s string) *string { return &s }

// Float64 returns a pointer to f, for filling optional filter fields.
func Float64(f float64) *float64 { return &f }

// Optional parameters are omitted from the query entirely when nil; they are
// never sent as empty strings or a literal "null".

func setOptionalString(q url.Values, name string, v *string) {
	if v != nil {
		q.Set(name, *v)
	}
}

func setOptionalFloat(q url.Values, name string, v *float64) {
	if v != nil {
		q.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
