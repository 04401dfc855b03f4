package gridgraph

import "github.com/katalvlaran/hillclimb/heightmap"

// Direction is one of the four orthogonal moves.
type Direction int

// Neighbour enumeration order. Shortest distances do not depend on it; only
// which of several equal-length paths a reconstruction returns does.
const (
	Left Direction = iota
	Right
	Up
	Down
)

// offsets are indexed by Direction as {dRow, dCol}.
var offsets = [4][2]int{
	Left:  {0, -1},
	Right: {0, 1},
	Up:    {-1, 0},
	Down:  {1, 0},
}

// Step returns the coordinate one move from c in direction d.
// The result may be out of bounds.
func (d Direction) Step(c heightmap.Coordinate) heightmap.Coordinate {
	o := offsets[d]
	return heightmap.Coordinate{Row: c.Row + o[0], Col: c.Col + o[1]}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Edge is a single legal move From→To.
type Edge struct {
	From, To heightmap.Coordinate
}

// GraphOptions contains tunable parameters for the climbing rule.
type GraphOptions struct {
	// MaxAscent is the largest elevation gain allowed in one step.
	MaxAscent int
}

// DefaultGraphOptions returns GraphOptions with MaxAscent=1.
func DefaultGraphOptions() GraphOptions {
	return GraphOptions{MaxAscent: 1}
}

// ClimbGraph exposes the legal moves over a height map. It is immutable
// once built and safe for concurrent readers.
type ClimbGraph struct {
	hm        *heightmap.HeightMap
	maxAscent int
}
