// internal/app/features/shared/reconcile.go

// Package shared carries the list-reconciliation wire contract every
// resource feature speaks: the page state a presenter reports with a
// mutation, and the directive the relay answers with.
package shared

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/dalemusser/pulsehub/internal/app/system/listmirror"
)

// PageState is the presenter's view of its list at mutation time: how many
// rows it is rendering, the collection total it last saw, and its position.
// For deletes, Shown counts the rendered rows including the one being
// deleted (the delete control lives on a visible row).
type PageState struct {
	Shown    int `json:"shown"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Directive tells the presenter how to reconcile its list after a mutation
// succeeded. Action "patched" means the local patch already matches the
// server; every other action names the page to fetch.
type Directive struct {
	Action string `json:"action"` // patched | refetch | refetchPrev | refetchFirst
	Page   int    `json:"page"`
}

func directive(out listmirror.Outcome, page int) Directive {
	return Directive{Action: out.String(), Page: out.TargetPage(page)}
}

// ParseState reads the presenter's page state from the mutation request's
// query parameters (shown, total, page, pageSize). Returns nil when the
// request carries none of them, which yields the safe restart directives.
func ParseState(r *http.Request) *PageState {
	var (
		s     PageState
		found bool
	)
	read := func(name string, dst *int) {
		v := query.Get(r, name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return
		}
		*dst = n
		found = true
	}
	read("shown", &s.Shown)
	read("total", &s.Total)
	read("page", &s.Page)
	read("pageSize", &s.PageSize)
	if !found {
		return nil
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return &s
}

// RowVisible reports whether the presenter says the mutated row is on its
// current page (update requests carry rowVisible=true|false).
func RowVisible(r *http.Request) bool {
	return query.Get(r, "rowVisible") == "true"
}

// ForCreate decides how a presenter's list absorbs a row it just created.
// Without page state the list restarts from page one.
func ForCreate(s *PageState) Directive {
	if s == nil {
		return directive(listmirror.RefetchFirst, 1)
	}
	return directive(listmirror.DecideCreate(s.Shown, s.Total, s.Page, s.PageSize), s.Page)
}

// ForUpdate decides reconciliation after an update: a visible row was
// patched in place; an off-page row forces a refetch of the current page.
func ForUpdate(s *PageState, rowVisible bool) Directive {
	page := 1
	if s != nil {
		page = s.Page
	}
	if rowVisible {
		return directive(listmirror.Patched, page)
	}
	return directive(listmirror.Refetch, page)
}

// ForDelete decides which page the presenter fetches after removing a row.
func ForDelete(s *PageState) Directive {
	if s == nil {
		return directive(listmirror.Refetch, 1)
	}
	return directive(listmirror.DecideDelete(s.Shown-1, s.Page), s.Page)
}
