// Package climb wires the height-map loader, the climbing graph and the
// breadth-first solver into a single call.
//
//	heightmap.Parse → gridgraph.New → bfs.ShortestPath
//
// Each stage only reads the previous stage's output.
package climb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/logger"
)

// Re-exported so callers can match failures without importing the stages.
var (
	// ErrMalformedInput is returned when the map text is not a valid height map.
	ErrMalformedInput = heightmap.ErrMalformedInput
	// ErrUnreachable is returned when no sequence of legal moves leads from S to E.
	ErrUnreachable = bfs.ErrUnreachable
)

// Route is a shortest climb from S to E.
type Route struct {
	// Steps is the number of moves; len(Path) == Steps+1.
	Steps int
	// Path lists every visited cell, starting at S and ending at E.
	Path []heightmap.Coordinate
}

// FewestSteps returns the minimum number of moves from S to E in input.
// Failures wrap ErrMalformedInput or ErrUnreachable.
func FewestSteps(input string) (int, error) {
	p, err := prepare(input)
	if err != nil {
		return 0, err
	}
	steps, err := bfs.ShortestPath(p.graph, p.start, p.end)
	if err != nil {
		return 0, p.wrap(err)
	}
	logger.Info("fewest steps: %d", steps)
	return steps, nil
}

// FindRoute is FewestSteps plus one shortest path. When several paths
// tie, the one preferring Left, Right, Up, Down moves earliest wins.
func FindRoute(input string) (*Route, error) {
	p, err := prepare(input)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(p.graph, p.start, bfs.WithTarget(p.end))
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered %d of %d cells", res.Discovered(), p.graph.Order())
	ids, err := res.PathTo(p.end)
	if err != nil {
		return nil, p.wrap(err)
	}
	route := &Route{Steps: len(ids) - 1, Path: make([]heightmap.Coordinate, len(ids))}
	for i, id := range ids {
		route.Path[i] = p.graph.Coordinate(id)
	}
	logger.Info("fewest steps: %d", route.Steps)
	return route, nil
}

// pipeline is the loaded state shared by FewestSteps and FindRoute.
type pipeline struct {
	graph      *gridgraph.ClimbGraph
	ends       heightmap.Endpoints
	start, end int
}

func prepare(input string) (*pipeline, error) {
	logger.Section("Load")
	hm, ends, err := heightmap.Parse(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("height map %dx%d, start %v, end %v", hm.Rows(), hm.Cols(), ends.Start, ends.End)

	g, err := gridgraph.New(hm, gridgraph.DefaultGraphOptions())
	if err != nil {
		return nil, fmt.Errorf("climb: building graph: %w", err)
	}
	logger.Section("Search")
	return &pipeline{
		graph: g,
		ends:  ends,
		start: g.Index(ends.Start),
		end:   g.Index(ends.End),
	}, nil
}

// wrap names the endpoints on an unreachable result.
func (p *pipeline) wrap(err error) error {
	if errors.Is(err, ErrUnreachable) {
		logger.Warn("no route from %v to %v", p.ends.Start, p.ends.End)
		return fmt.Errorf("%w: %v to %v", ErrUnreachable, p.ends.Start, p.ends.End)
	}
	return err
}
