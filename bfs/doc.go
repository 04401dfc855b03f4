// Package bfs provides a breadth-first search over any graph whose
// vertices are dense integer IDs, returning unweighted shortest-path
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: dequeue sequence
//   - Depth(id): distance (edges) from start, recorded at first discovery
//   - PathTo(id): one shortest path, rebuilt from parent links
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnVisit   (when dequeued; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once WithTarget's vertex is dequeued.
//
// Why
//
//   - All edges cost one, so the first time a vertex is discovered is via a
//     shortest path. A vertex is therefore enqueued at most once and its
//     depth is never rewritten; no priority queue is needed.
//
// Determinism
//
//	Neighbours are enqueued in the order Graph.AppendNeighbors yields them,
//	so Order and PathTo are reproducible. Distances do not depend on that
//	order at all.
//
// Complexity (V = Order(), E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, depth and parent slices, and the
//     sparse discovered set.
//
// Usage
//
//	steps, err := bfs.ShortestPath(g, start, end)
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // no sequence of moves connects start to end
//	}
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithTarget(end),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrStartOutOfRange   if start is not a vertex.
//   - ErrTargetOutOfRange  if the target is not a vertex.
//   - ErrOptionViolation   for a negative MaxDepth or Target.
//   - ErrUnreachable       from ShortestPath and PathTo when the frontier
//     empties before the vertex is discovered.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
