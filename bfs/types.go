// Package bfs provides tunable options and error definitions
// for breadth-first search over a dense-ID graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start ID is not in [0, Order()).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrTargetOutOfRange is returned when the target ID is not in [0, Order()).
	ErrTargetOutOfRange = errors.New("bfs: target vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when the frontier is exhausted without
	// discovering the requested vertex.
	ErrUnreachable = errors.New("bfs: target unreachable")
)

// noTarget marks a full traversal with no early stop.
const noTarget = -1

// Graph is the read-only view BFS needs: vertex IDs are dense in
// [0, Order()), and AppendNeighbors appends the out-neighbours of id to
// dst in a deterministic order.
type Graph interface {
	Order() int
	AppendNeighbors(dst []int, id int) []int
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is first discovered.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if ≥ 0, stops the search once this vertex is dequeued.
	Target int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no target (full traversal)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		Target:    noTarget,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the search as soon as id is dequeued.
// A negative id is an ErrOptionViolation.
func WithTarget(id int) Option {
	return func(o *BFSOptions) {
		if id < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, id)
			return
		}
		o.Target = id
	}
}

// Result holds the outcome of a BFS traversal. Depth and parent links are
// recorded once per vertex, the moment it is first discovered.
type Result struct {
	// Order lists vertices in the sequence they were dequeued.
	Order []int

	depth  []int // valid only for reached vertices
	parent []int // -1 for the start and for unreached vertices
	start  int
	found  int // number of discovered vertices
}

// Start returns the ID the search began from.
func (r *Result) Start() int { return r.start }

// Discovered returns how many vertices were ever enqueued.
func (r *Result) Discovered() int { return r.found }

// Reached reports whether id was discovered.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.parent) && (id == r.start || r.parent[id] >= 0)
}

// Depth returns the number of edges from the start to id and whether id
// was reached at all.
func (r *Result) Depth(id int) (int, bool) {
	if !r.Reached(id) {
		return 0, false
	}
	return r.depth[id], true
}

// PathTo reconstructs the path from the start vertex to dest, both included.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	d, ok := r.Depth(dest)
	if !ok {
		return nil, fmt.Errorf("%w: no path to %d", ErrUnreachable, dest)
	}
	path := make([]int, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.parent[cur]
	}
	return path, nil
}
