// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of rows shown in paged lists when the
// request does not pick one of the allowed sizes.
const DefaultPageSize = 10

// PageSizes is the set of page sizes the list views offer. Requests asking
// for any other size are snapped back to DefaultPageSize so that paging
// math stays aligned with what the platform was asked for.
var PageSizes = []int{10, 25, 50}

// IsValidPageSize checks if n is one of the allowed page sizes.
func IsValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParsePageSize extracts the "limit" query parameter and snaps it to an
// allowed page size. Returns DefaultPageSize if not present or not allowed.
func ParsePageSize(r *http.Request) int {
	s := query.Get(r, "limit")
	if s == "" {
		return DefaultPageSize
	}
	n, err := strconv.Atoi(s)
	if err != nil || !IsValidPageSize(n) {
		return DefaultPageSize
	}
	return n
}

// PageCount returns the number of pages needed for total rows at the given
// page size. A collection with no rows still has one (empty) page, which
// keeps "last page" arithmetic meaningful everywhere.
func PageCount(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// ClampPage pulls page back into [1, PageCount(total, size)]. Deletions can
// leave the current page past the end of the collection; callers clamp
// before refetching.
func ClampPage(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if last := PageCount(total, size); page > last {
		return last
	}
	return page
}

// Offset returns the 0-based row offset of the first row on page.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start   int  // 1-based index of the first shown row (0 if no results)
	End     int  // 1-based index of the last shown row (0 if no results)
	HasPrev bool // a previous page exists
	HasNext bool // a next page exists
}

// ComputeRange calculates the display range for the current page given how
// many rows the platform returned and the collection total.
func ComputeRange(page, size, shown, total int) Range {
	rng := Range{
		HasPrev: page > 1,
		HasNext: page < PageCount(total, size),
	}
	if shown == 0 {
		return rng
	}
	rng.Start = Offset(page, size) + 1
	rng.End = rng.Start + shown - 1
	return rng
}
