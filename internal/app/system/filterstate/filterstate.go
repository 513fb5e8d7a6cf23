// internal/app/system/filterstate/filterstate.go

// Package filterstate owns the filter, search, and pagination state for one
// list screen and decides when a state change becomes a fetch.
//
// Every change except free-text search notifies immediately. Search input is
// debounced: each keystroke re-arms a single timer and only the last
// keystroke inside the quiet period produces a notification, so intermediate
// keystrokes never reach the platform.
package filterstate

import (
	"sync"
	"time"

	"github.com/dalemusser/pulsehub/internal/app/system/paging"
)

// DefaultSearchDebounce is the quiet period applied to search input when the
// config does not set one.
const DefaultSearchDebounce = 400 * time.Millisecond

// Snapshot is an immutable copy of the controller state at notification
// time. OnChange callbacks receive snapshots, never the live controller.
type Snapshot struct {
	Values   map[string]string
	Search   string
	Page     int
	PageSize int
}

// Config configures a Controller.
type Config struct {
	// Defaults seeds the filter set and is what ClearAll restores.
	Defaults map[string]string
	// SearchDebounce is the search quiet period; zero means
	// DefaultSearchDebounce.
	SearchDebounce time.Duration
	// PageSize is the initial page size; invalid values snap to
	// paging.DefaultPageSize.
	PageSize int
	// OnChange receives a snapshot whenever the state settles into
	// something worth fetching. May be nil.
	OnChange func(Snapshot)
}

// Controller tracks one screen's filter set. Mutators are safe to call from
// the request goroutine while a debounce timer is pending.
type Controller struct {
	mu       sync.Mutex
	values   map[string]string
	defaults map[string]string
	search   string
	page     int
	pageSize int

	debounce time.Duration
	timer    *time.Timer
	seq      uint64 // advances on every arm/cancel; stale expiries no-op
	closed   bool

	onChange func(Snapshot)
}

// New builds a Controller from cfg. Call Seed for deep-link values, then
// Mount to fire the first notification.
func New(cfg Config) *Controller {
	c := &Controller{
		values:   make(map[string]string, len(cfg.Defaults)),
		defaults: make(map[string]string, len(cfg.Defaults)),
		page:     1,
		pageSize: cfg.PageSize,
		debounce: cfg.SearchDebounce,
		onChange: cfg.OnChange,
	}
	for k, v := range cfg.Defaults {
		c.values[k] = v
		c.defaults[k] = v
	}
	if !paging.IsValidPageSize(c.pageSize) {
		c.pageSize = paging.DefaultPageSize
	}
	if c.debounce <= 0 {
		c.debounce = DefaultSearchDebounce
	}
	return c
}

// Seed applies deep-linked filter values over the defaults before Mount.
// Non-empty values override; the page is forced back to one. Seed does not
// notify, so a seeded mount still produces exactly one fetch.
func (c *Controller) Seed(values map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	for k, v := range values {
		if v != "" {
			c.values[k] = v
		}
	}
	c.page = 1
}

// Mount fires the initial notification. Call once after New/Seed.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetFilter sets a non-text filter and notifies immediately with the page
// reset to one. A pending search timer is cancelled; the snapshot already
// carries the latest typed text.
func (c *Controller) SetFilter(name, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	c.values[name] = value
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetSearch records the latest search text and re-arms the debounce timer.
// The notification fires only when the timer expires, with the page reset to
// one and whatever text was typed last.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.search = text
	c.seq++
	gen := c.seq
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() { c.searchExpired(gen) })
}

func (c *Controller) searchExpired(gen uint64) {
	c.mu.Lock()
	// A newer keystroke or Close may have raced the timer firing.
	if c.closed || gen != c.seq {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetPage moves to page n (floored at one) and notifies immediately.
func (c *Controller) SetPage(n int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	if n < 1 {
		n = 1
	}
	c.page = n
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// AlignPage records a page the screen moved to on its own, e.g. stepping
// back after a delete drained the last row, without notifying.
func (c *Controller) AlignPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if n < 1 {
		n = 1
	}
	c.page = n
}

// SetPageSize switches the page size, snapping unsupported sizes to the
// default, and restarts from page one.
func (c *Controller) SetPageSize(n int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	if !paging.IsValidPageSize(n) {
		n = paging.DefaultPageSize
	}
	c.pageSize = n
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// ClearAll restores every filter to its default, clears the search text, and
// fires exactly one notification from page one.
func (c *Controller) ClearAll() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	c.values = make(map[string]string, len(c.defaults))
	for k, v := range c.defaults {
		c.values[k] = v
	}
	c.search = ""
	c.page = 1
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Close cancels any pending debounce timer. No notification fires after
// Close returns; late mutator calls become no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cancelTimerLocked()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Value returns the current value of one filter.
func (c *Controller) Value(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[name]
}

func (c *Controller) cancelTimerLocked() {
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	vals := make(map[string]string, len(c.values))
	for k, v := range c.values {
		vals[k] = v
	}
	return Snapshot{
		Values:   vals,
		Search:   c.search,
		Page:     c.page,
		PageSize: c.pageSize,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
