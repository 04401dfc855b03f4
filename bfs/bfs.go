// Package bfs provides breadth-first search over a dense-ID graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and an early-stop target.
package bfs

import (
	"context"
	"fmt"

	"github.com/rhartert/sparsesets"
)

// walker encapsulates mutable BFS state. A fresh walker is built for
// every call, so nothing leaks between searches.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	seen  *sparsesets.Set
	nbrs  []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrTargetOutOfRange for a target
// beyond the graph, or any wrapped OnVisit error.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if o.Target >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, o.Target, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		seen:  sparsesets.New(n),
		nbrs:  make([]int, 0, 4),
		res: &Result{
			Order:  make([]int, 0, n),
			depth:  make([]int, n),
			parent: make([]int, n),
			start:  start,
		},
	}
	for i := range w.res.parent {
		w.res.parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// ShortestPath returns the number of edges on a shortest path from start
// to end, or ErrUnreachable when the frontier empties first.
// start == end yields 0.
func ShortestPath(g Graph, start, end int, opts ...Option) (int, error) {
	opts = append(opts[:len(opts):len(opts)], WithTarget(end))
	res, err := BFS(g, start, opts...)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth(end)
	if !ok {
		return 0, fmt.Errorf("%w: %d from %d", ErrUnreachable, end, start)
	}
	return d, nil
}

// enqueue records id as discovered at depth d with the given parent and
// appends it to the queue. Called exactly once per vertex.
func (w *walker) enqueue(id, d, parent int) {
	w.seen.Insert(id)
	w.res.depth[id] = d
	w.res.parent[id] = parent
	w.res.found++
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, target, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[head]
		d := w.res.depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if id == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(id, d)
	}
	return nil
}

// enqueueNeighbors discovers every unseen neighbour of id, honouring MaxDepth.
// Already discovered vertices are never re-enqueued or re-distanced.
func (w *walker) enqueueNeighbors(id, d int) {
	next := d + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.nbrs = w.graph.AppendNeighbors(w.nbrs[:0], id)
	for _, nbr := range w.nbrs {
		if !w.seen.Contains(nbr) {
			w.enqueue(nbr, next, id)
		}
	}
}
