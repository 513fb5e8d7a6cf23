// internal/app/system/cascade/cascade.go

// Package cascade models dependent filter fields: department drives the
// staff and subject option lists, so changing the department must clear the
// dependent selections and option lists before anything new is fetched.
//
// Dependent lists load in parallel and fail independently; one broken feed
// degrades only its own field to an empty list. A parent change mid-flight
// advances a generation counter so results from the superseded load are
// discarded instead of overwriting newer state.
package cascade

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// State is the lifecycle of one dependent field.
type State int

const (
	// Idle means no parent is selected; the field has nothing to offer.
	Idle State = iota
	// Loading means a parent is set and the option fetch is in flight.
	Loading
	// Loaded means the option list is current for the active parent.
	Loaded
	// Failed means the fetch for the active parent failed; the field
	// degrades to an empty list and stays usable.
	Failed
)

var stateNames = map[State]string{
	Idle:    "idle",
	Loading: "loading",
	Loaded:  "loaded",
	Failed:  "failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "idle"
}

// LoadFunc fetches the option list for one dependent field scoped to the
// given parent value.
type LoadFunc func(ctx context.Context, parentValue string) ([]models.Option, error)

// FieldView is a copy of one dependent field's current state.
type FieldView struct {
	Options  []models.Option
	State    State
	Selected string
}

type field struct {
	load     LoadFunc
	options  []models.Option
	state    State
	selected string
}

// Graph holds the dependent fields for one shared parent filter.
type Graph struct {
	mu     sync.Mutex
	fields map[string]*field
	parent string
	gen    uint64
	wg     sync.WaitGroup
	log    *zap.Logger
}

// New returns an empty graph. Register fields with AddField before the
// first SetParent.
func New(log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	return &Graph{
		fields: make(map[string]*field),
		log:    log,
	}
}

// AddField registers a dependent field and returns the graph for chaining.
func (g *Graph) AddField(name string, load LoadFunc) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fields[name] = &field{load: load, options: []models.Option{}, state: Idle}
	return g
}

// SetParent switches the shared parent value. Every dependent selection and
// option list is cleared before this method returns; when value is non-empty
// each field then loads its options in parallel, scoped only by the parent,
// never by a sibling.
func (g *Graph) SetParent(ctx context.Context, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.gen++
	g.parent = value
	for _, f := range g.fields {
		f.selected = ""
		f.options = []models.Option{}
		f.state = Idle
	}
	if value == "" {
		return
	}

	gen := g.gen
	for name, f := range g.fields {
		f.state = Loading
		g.wg.Add(1)
		go g.loadField(ctx, name, f, value, gen)
	}
}

func (g *Graph) loadField(ctx context.Context, name string, f *field, parent string, gen uint64) {
	defer g.wg.Done()

	opts, err := f.load(ctx, parent)

	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		// A newer parent change superseded this load.
		return
	}
	if err != nil {
		g.log.Warn("dependent option load failed",
			zap.String("field", name),
			zap.String("parent", parent),
			zap.Error(err))
		f.state = Failed
		f.options = []models.Option{}
		return
	}
	if opts == nil {
		opts = []models.Option{}
	}
	f.state = Loaded
	f.options = opts
}

// Wait blocks until every launched load has settled. Results of superseded
// generations are discarded, not applied.
func (g *Graph) Wait() {
	g.wg.Wait()
}

// Select records the chosen option for a dependent field.
func (g *Graph) Select(name, id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.fields[name]; ok {
		f.selected = id
	}
}

// Field returns a copy of one dependent field. Unknown names report an
// idle, empty field.
func (g *Graph) Field(name string) FieldView {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, ok := g.fields[name]
	if !ok {
		return FieldView{Options: []models.Option{}, State: Idle}
	}
	opts := make([]models.Option, len(f.options))
	copy(opts, f.options)
	return FieldView{Options: opts, State: f.state, Selected: f.selected}
}

// Parent returns the active parent value.
func (g *Graph) Parent() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.parent
}

// Reset clears the parent and every dependent field back to Idle.
func (g *Graph) Reset() {
	g.SetParent(context.Background(), "")
}
