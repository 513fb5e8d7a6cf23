// internal/app/remote/page.go
package remote

import (
	"net/url"
	"strconv"
	"strings"
)

// Page is the platform's list envelope.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Normalize repairs envelopes from older platform builds so downstream code
// can trust the pair: a null items array becomes empty, Total is floored at
// zero and raised to at least len(Items).
func (p *Page[T]) Normalize() {
	if p.Items == nil {
		p.Items = []T{}
	}
	if p.Total < 0 {
		p.Total = 0
	}
	if p.Total < len(p.Items) {
		p.Total = len(p.Items)
	}
}

// ListQuery carries the paging, search, and filter state for a list fetch.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	// Filters maps platform parameter names (departmentId, subjectId,
	// role, ...) to selected values. Empty values are omitted, which is
	// how "all" is expressed on the wire.
	Filters map[string]string
}

// Values encodes q as platform query parameters.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	for name, val := range q.Filters {
		if val != "" {
			v.Set(name, val)
		}
	}
	return v
}

