// Package dfs implements depth-first topological sort and cycle detection
// on an integer-indexed directed graph given by a neighbor function.
//
// What:
//
//   - TopologicalSort: a linear ordering of [0, n) such that for every arc
//     u→v, u appears before v. Roots are tried in index order and neighbors
//     in the order the neighbor function yields them, so the result is
//     deterministic.
//   - Cycle detection: vertex coloring (White, Gray, Black); a Gray hit is
//     a back-arc, reported as ErrCycleDetected together with the cycle.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) (recursion stack and state slice).
//
// Errors:
//
//   - ErrNilNeighbors        neighbor function is nil
//   - ErrNeighborOutOfRange  a neighbor outside [0, n)
//   - ErrCycleDetected       the graph is not a DAG
//   - context.Canceled       sort canceled via WithContext
package dfs
