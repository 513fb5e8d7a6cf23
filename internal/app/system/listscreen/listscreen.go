// internal/app/system/listscreen/listscreen.go

// Package listscreen wires a filter controller, a list mirror, and a fetch
// function into one screen-scoped unit.
//
// Filter and pagination changes trigger fetches through the controller;
// mutations patch the mirror and run whatever follow-up fetch the outcome
// demands. Every fetch carries a generation token, so when two overlap the
// newer request wins no matter which response arrives last. A failed fetch
// keeps the previous rows on screen and surfaces the error alongside them.
package listscreen

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/system/filterstate"
	"github.com/dalemusser/pulsehub/internal/app/system/listmirror"
)

// FetchFunc loads one page for the given filter snapshot and returns the
// rows plus the filtered total.
type FetchFunc[T listmirror.Entity] func(ctx context.Context, snap filterstate.Snapshot) ([]T, int, error)

// Config assembles a Screen.
type Config[T listmirror.Entity] struct {
	Fetch          FetchFunc[T]
	Defaults       map[string]string
	SearchDebounce time.Duration
	PageSize       int
	Log            *zap.Logger
}

// Screen owns the list state for one mounted view. It is safe to use while
// a debounced search fetch is pending on its timer goroutine.
type Screen[T listmirror.Entity] struct {
	mu     sync.Mutex
	mirror *listmirror.Mirror[T]
	err    error
	gen    uint64

	filters *filterstate.Controller
	fetch   FetchFunc[T]
	ctx     context.Context
	log     *zap.Logger
}

// New builds a Screen. ctx bounds every fetch the screen issues and should
// live as long as the screen does.
func New[T listmirror.Entity](ctx context.Context, cfg Config[T]) *Screen[T] {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	s := &Screen[T]{
		mirror: listmirror.New[T](cfg.PageSize),
		fetch:  cfg.Fetch,
		ctx:    ctx,
		log:    cfg.Log,
	}
	s.filters = filterstate.New(filterstate.Config{
		Defaults:       cfg.Defaults,
		SearchDebounce: cfg.SearchDebounce,
		PageSize:       cfg.PageSize,
		OnChange:       s.reload,
	})
	return s
}

// Seed applies deep-linked filters before Mount.
func (s *Screen[T]) Seed(values map[string]string) { s.filters.Seed(values) }

// Mount runs the initial load.
func (s *Screen[T]) Mount() { s.filters.Mount() }

// SetFilter changes a non-text filter and fetches immediately.
func (s *Screen[T]) SetFilter(name, value string) { s.filters.SetFilter(name, value) }

// SetSearch records search text; the fetch fires when the debounce expires.
func (s *Screen[T]) SetSearch(text string) { s.filters.SetSearch(text) }

// SetPage fetches the requested page.
func (s *Screen[T]) SetPage(n int) { s.filters.SetPage(n) }

// SetPageSize switches page size and restarts from page one.
func (s *Screen[T]) SetPageSize(n int) { s.filters.SetPageSize(n) }

// ClearAll restores default filters and fetches once.
func (s *Screen[T]) ClearAll() { s.filters.ClearAll() }

// Reload fetches the current snapshot again, e.g. after a failed fetch the
// user chose to retry. Nothing retries automatically.
func (s *Screen[T]) Reload() { s.reload(s.filters.Snapshot()) }

// Close tears the screen down: the debounce timer dies and any in-flight
// fetch result is discarded.
func (s *Screen[T]) Close() {
	s.filters.Close()
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// ApplyCreate patches the mirror after the platform accepted a create. When
// the row cannot be placed locally the screen re-fetches from page one.
func (s *Screen[T]) ApplyCreate(e T) listmirror.Outcome {
	s.mu.Lock()
	out := s.mirror.ApplyCreate(e)
	page := s.mirror.Page()
	s.mu.Unlock()
	s.refetch(out, page)
	return out
}

// ApplyUpdate patches the matching row in place after an accepted update; a
// stale miss re-fetches the current page instead.
func (s *Screen[T]) ApplyUpdate(e T) listmirror.Outcome {
	s.mu.Lock()
	out := s.mirror.ApplyUpdate(e)
	page := s.mirror.Page()
	s.mu.Unlock()
	s.refetch(out, page)
	return out
}

// ApplyDelete removes the row after an accepted delete and re-fetches the
// page the outcome points at, stepping back one page when this one drained.
func (s *Screen[T]) ApplyDelete(id string) listmirror.Outcome {
	s.mu.Lock()
	out := s.mirror.ApplyDelete(id)
	page := s.mirror.Page()
	s.mu.Unlock()
	s.refetch(out, page)
	return out
}

// Rows returns a copy of the rows currently on screen.
func (s *Screen[T]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror.Items()
}

// Total returns the filtered collection size as of the last apply or fetch.
func (s *Screen[T]) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror.Total()
}

// Page returns the page currently on screen.
func (s *Screen[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror.Page()
}

// PageSize returns the page size currently on screen.
func (s *Screen[T]) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror.PageSize()
}

// Err returns the error from the most recent failed fetch, or nil after a
// successful one. Rows and Total keep their last good values while Err is
// set.
func (s *Screen[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot exposes the current filter state for presenters that render the
// filter bar.
func (s *Screen[T]) Snapshot() filterstate.Snapshot { return s.filters.Snapshot() }

func (s *Screen[T]) refetch(out listmirror.Outcome, page int) {
	if !out.NeedsRefetch() {
		return
	}
	target := out.TargetPage(page)
	s.filters.AlignPage(target)
	snap := s.filters.Snapshot()
	snap.Page = target
	s.reload(snap)
}

// reload is the single fetch path: controller notifications, mutation
// follow-ups, and manual retries all land here.
func (s *Screen[T]) reload(snap filterstate.Snapshot) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	items, total, err := s.fetch(s.ctx, snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer fetch was issued while this one was in flight.
		return
	}
	if err != nil {
		s.err = err
		s.log.Warn("list fetch failed",
			zap.Int("page", snap.Page),
			zap.String("search", snap.Search),
			zap.Error(err))
		return
	}
	s.err = nil
	s.mirror.SetPage(items, total, snap.Page, snap.PageSize)
}
