// Package hillclimb finds the fewest steps across an elevation map.
//
// A map is text with one row per line: 'a' (lowest) to 'z' (highest),
// plus one 'S' (start, treated as 'a') and one 'E' (end, treated as 'z').
// A move goes left, right, up or down to a cell at most one level higher;
// any descent is allowed.
//
// Packages:
//
//	heightmap/     parse text into an immutable grid and locate S and E
//	gridgraph/     the directed graph of legal moves, neighbours on demand
//	bfs/           breadth-first search over dense vertex IDs
//	climb/         the three stages wired together (FewestSteps, FindRoute)
//	cmd/hillclimb  command-line front end
//
// Quick example:
//
//	Sabqponm
//	abcryxxl
//	accszExk   → 31 steps
//	acctuvwj
//	abdefghi
//
//	steps, err := climb.FewestSteps(input)
package hillclimb
