package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// New wraps hm as a directed climbing graph. The map is shared, not copied.
// Returns ErrNilHeightMap for a nil map and ErrOptionViolation for a
// negative MaxAscent.
// Complexity: O(1).
func New(hm *heightmap.HeightMap, opts GraphOptions) (*ClimbGraph, error) {
	if hm == nil {
		return nil, ErrNilHeightMap
	}
	if opts.MaxAscent < 0 {
		return nil, fmt.Errorf("%w: MaxAscent cannot be negative (%d)", ErrOptionViolation, opts.MaxAscent)
	}
	return &ClimbGraph{hm: hm, maxAscent: opts.MaxAscent}, nil
}

// HeightMap returns the underlying map.
func (g *ClimbGraph) HeightMap() *heightmap.HeightMap { return g.hm }

// Order returns the number of vertices, one per cell.
func (g *ClimbGraph) Order() int { return g.hm.Len() }

// InBounds reports whether c is a vertex of g.
func (g *ClimbGraph) InBounds(c heightmap.Coordinate) bool { return g.hm.InBounds(c) }

// Index returns the vertex ID of c.
func (g *ClimbGraph) Index(c heightmap.Coordinate) int { return g.hm.Index(c) }

// Coordinate returns the cell of vertex id.
func (g *ClimbGraph) Coordinate(id int) heightmap.Coordinate { return g.hm.CoordinateOf(id) }

// canClimb applies the elevation-step rule to two in-bounds cells.
func (g *ClimbGraph) canClimb(from, to heightmap.Elevation) bool {
	return int(to)-int(from) <= g.maxAscent
}

// AppendNeighbors appends the vertex IDs reachable in one move from id to
// dst, in Left, Right, Up, Down order, and returns the extended slice.
// Complexity: O(1).
func (g *ClimbGraph) AppendNeighbors(dst []int, id int) []int {
	u := g.hm.CoordinateOf(id)
	eu := g.hm.AtIndex(id)
	for d := range offsets {
		v := Direction(d).Step(u)
		if !g.hm.InBounds(v) {
			continue
		}
		vi := g.hm.Index(v)
		if g.canClimb(eu, g.hm.AtIndex(vi)) {
			dst = append(dst, vi)
		}
	}
	return dst
}

// Neighbors returns the coordinates reachable in one move from u, in
// Left, Right, Up, Down order. An out-of-bounds u has no neighbours.
// Complexity: O(1).
func (g *ClimbGraph) Neighbors(u heightmap.Coordinate) []heightmap.Coordinate {
	if !g.hm.InBounds(u) {
		return nil
	}
	ids := g.AppendNeighbors(make([]int, 0, len(offsets)), g.hm.Index(u))
	out := make([]heightmap.Coordinate, len(ids))
	for i, id := range ids {
		out[i] = g.hm.CoordinateOf(id)
	}
	return out
}

// HasEdge reports whether the move u→v is legal: both in bounds, v one
// orthogonal step from u, and the ascent within MaxAscent.
// Complexity: O(1).
func (g *ClimbGraph) HasEdge(u, v heightmap.Coordinate) bool {
	if !g.hm.InBounds(u) || !g.hm.InBounds(v) {
		return false
	}
	dr, dc := v.Row-u.Row, v.Col-u.Col
	if dr*dr+dc*dc != 1 {
		return false
	}
	return g.canClimb(g.hm.At(u), g.hm.At(v))
}

// Edges materialises every legal move, grouped by source in row-major
// order and by Left, Right, Up, Down within a source.
// Complexity: O(R×C) time, Memory: O(E).
func (g *ClimbGraph) Edges() []Edge {
	var (
		edges []Edge
		buf   = make([]int, 0, len(offsets))
	)
	for id := 0; id < g.Order(); id++ {
		from := g.hm.CoordinateOf(id)
		buf = g.AppendNeighbors(buf[:0], id)
		for _, to := range buf {
			edges = append(edges, Edge{From: from, To: g.hm.CoordinateOf(to)})
		}
	}
	return edges
}
