// Package gridgraph treats a heightmap.HeightMap as a directed graph in
// which every cell is a vertex and an edge u→v exists for each legal
// climbing move.
//
// What:
//
//   - One vertex per cell; vertex IDs are row-major indices.
//   - Edge u→v iff v is an orthogonal neighbour of u (left, right, up,
//     down; never diagonal), v is in bounds, and
//     elevation(v) − elevation(u) ≤ MaxAscent.
//   - Descents of any size are legal, so the relation is not symmetric:
//     both u→v and v→u exist exactly when |elevation(u) − elevation(v)| ≤ MaxAscent.
//
// Why:
//
//   - Edges are enumerated on demand, so memory stays O(cells) rather than
//     O(cells×4); the search in package bfs only ever asks for the
//     neighbours of the vertex it is expanding.
//
// Complexity:
//
//   - New:             O(1), Memory: O(1) (the height map is shared, not copied).
//   - Neighbors:       O(1) per vertex (four bounds and elevation checks).
//   - Edges:           O(R×C), Memory: O(E). Diagnostic only.
//
// Options:
//
//   - GraphOptions.MaxAscent: largest legal climb in one step (default 1).
//
// Errors:
//
//   - ErrNilHeightMap:     New was given a nil map.
//   - ErrOptionViolation:  MaxAscent is negative.
package gridgraph
