// internal/app/system/listmirror/listmirror.go

// Package listmirror keeps a screen-local mirror of the current list page
// consistent with the platform after create, update, and delete.
//
// A mutation patches the mirror immediately where the correct result is
// knowable locally and reports an Outcome telling the owner which page to
// re-fetch when it is not. The mirror never talks to the network itself;
// the owning screen or handler performs the fetch and commits the result
// with SetPage, which supersedes any local patch wholesale.
package listmirror

import "github.com/dalemusser/pulsehub/internal/app/system/paging"

// Entity is any record the mirror can track. IDs are opaque strings and
// unique within one resource's collection.
type Entity interface {
	EntityID() string
}

// Outcome tells the owner of a mirror what, if anything, must be re-fetched
// after a mutation was applied.
type Outcome int

const (
	// Patched means the local mirror already matches the server; no fetch
	// is needed.
	Patched Outcome = iota
	// Refetch means the current page must be fetched again, e.g. to
	// backfill a row from the next page boundary after a delete.
	Refetch
	// RefetchPrev means the current page drained and the previous page
	// should be fetched instead.
	RefetchPrev
	// RefetchFirst means ordering is unknown and the list should restart
	// from page one.
	RefetchFirst
)

var outcomeNames = map[Outcome]string{
	Patched:      "patched",
	Refetch:      "refetch",
	RefetchPrev:  "refetchPrev",
	RefetchFirst: "refetchFirst",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "refetch"
}

// NeedsRefetch reports whether the owner must issue a follow-up fetch.
func (o Outcome) NeedsRefetch() bool { return o != Patched }

// TargetPage returns the page the follow-up fetch should request, given the
// page the mirror was on when the mutation applied.
func (o Outcome) TargetPage(current int) int {
	switch o {
	case RefetchFirst:
		return 1
	case RefetchPrev:
		if current > 1 {
			return current - 1
		}
		return 1
	default:
		if current < 1 {
			return 1
		}
		return current
	}
}

// DecideCreate reports how a list showing `shown` of `total` rows on `page`
// absorbs a newly created row. Only the last page with spare capacity can
// take the row locally; anywhere else the row's server-side position is
// unknown and the list restarts from page one.
func DecideCreate(shown, total, page, pageSize int) Outcome {
	if page == paging.PageCount(total, pageSize) && shown < pageSize {
		return Patched
	}
	return RefetchFirst
}

// DecideDelete reports which page to fetch after a row was removed locally.
// Draining a page beyond the first moves the view back one page; otherwise
// the current page is fetched again to backfill from the next boundary.
func DecideDelete(shownAfterRemove, page int) Outcome {
	if shownAfterRemove <= 0 && page > 1 {
		return RefetchPrev
	}
	return Refetch
}

// Mirror is the screen-owned copy of one fetched page. It is not safe for
// concurrent use; each screen instance owns exactly one.
type Mirror[T Entity] struct {
	items    []T
	total    int
	page     int
	pageSize int
}

// New returns an empty mirror positioned on page one.
func New[T Entity](pageSize int) *Mirror[T] {
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	return &Mirror[T]{items: []T{}, page: 1, pageSize: pageSize}
}

// SetPage replaces the mirror with a freshly fetched page. Every fetch goes
// through here, so a stale local patch is always superseded by the next
// successful fetch with no merge step.
func (m *Mirror[T]) SetPage(items []T, total, page, pageSize int) {
	m.items = make([]T, len(items))
	copy(m.items, items)
	if total < len(items) {
		total = len(items)
	}
	m.total = total
	if page < 1 {
		page = 1
	}
	m.page = page
	if pageSize >= 1 {
		m.pageSize = pageSize
	}
}

// Items returns a copy of the mirrored rows.
func (m *Mirror[T]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Mirror[T]) Total() int    { return m.total }
func (m *Mirror[T]) Page() int     { return m.page }
func (m *Mirror[T]) PageSize() int { return m.pageSize }

// Find returns the mirrored row with the given id.
func (m *Mirror[T]) Find(id string) (T, bool) {
	for _, it := range m.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ApplyCreate absorbs a created row. On the last page with spare capacity
// the row is appended and the total bumped, avoiding a round trip; on any
// other page state the mirror is left untouched and the caller re-fetches
// from page one.
func (m *Mirror[T]) ApplyCreate(e T) Outcome {
	out := DecideCreate(len(m.items), m.total, m.page, m.pageSize)
	if out == Patched {
		m.items = append(m.items, e)
		m.total++
	}
	return out
}

// ApplyUpdate replaces the matching row in place. A miss means the page is
// stale (someone else moved or removed the row), which forces a re-fetch
// rather than surfacing an error.
func (m *Mirror[T]) ApplyUpdate(e T) Outcome {
	id := e.EntityID()
	for i, it := range m.items {
		if it.EntityID() == id {
			m.items[i] = e
			return Patched
		}
	}
	return Refetch
}

// ApplyDelete removes the matching row and decrements the total. The caller
// always re-fetches afterward: the mirror cannot know the row that should
// backfill the page, only which page to ask for. A miss leaves the mirror
// untouched and still reports Refetch.
func (m *Mirror[T]) ApplyDelete(id string) Outcome {
	for i, it := range m.items {
		if it.EntityID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			if m.total > 0 {
				m.total--
			}
			return DecideDelete(len(m.items), m.page)
		}
	}
	return Refetch
}
