// Package bfs provides breadth-first search over an implicit directed graph
// whose nodes are the integers 0..n-1 and whose successors are supplied by a
// Neighbors function.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (before a node is enqueued) and OnVisit (may abort).
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - The concept lattice answers up-set / down-set queries and checks
//     reachability of every concept from the top and bottom by walking its
//     covering relation; those walks are plain BFS over concept indices.
//
// Determinism
//
//	Neighbors are enqueued in the order the Neighbors function returns them,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = n, E = total neighbor count)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrNilNeighbors         if the neighbor function is nil.
//   - ErrStartOutOfRange      if start is not in [0, n).
//   - ErrNeighborOutOfRange   if the neighbor function yields a node outside [0, n).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
