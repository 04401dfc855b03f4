// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleClimbGraph_Neighbors lists the legal moves out of one cell.
// Scenario:
//
//	a b d
//	a c b
//	a a z   (E at bottom-right)
//
// From the centre 'c' the cell to the left (a) and the one above (b) are
// descents, the one to the right (b) is a descent, and the one below (a)
// is a descent: all four are legal. From 'b' at the top the 'd' to its
// right is a climb of two and is excluded.
func ExampleClimbGraph_Neighbors() {
	hm, _ := heightmap.MustParse("Sbd\nacb\naaE")
	g, _ := gridgraph.New(hm, gridgraph.DefaultGraphOptions())

	fmt.Println(g.Neighbors(heightmap.Coordinate{Row: 1, Col: 1}))
	fmt.Println(g.Neighbors(heightmap.Coordinate{Row: 0, Col: 1}))

	// Output:
	// [(1,0) (1,2) (0,1) (2,1)]
	// [(0,0) (1,1)]
}
