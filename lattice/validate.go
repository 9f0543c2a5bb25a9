// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/kfca/bfs"
	"github.com/katalvlaran/kfca/dfs"
)

// Validate re-checks the structural invariants of the lattice:
//   - every (extent, intent) pair is a φ-concept;
//   - extents are pairwise distinct;
//   - exactly one concept has no upper neighbor (index 0) and exactly one
//     has no lower neighbor (the last index);
//   - the covering relation is acyclic and connected, and every concept is
//     reachable from the top downwards and from the bottom upwards.
//
// Build calls Validate before returning; a failure is ErrBrokenInvariant.
func (l *Lattice[T]) Validate() error {
	k := len(l.concepts)
	if k == 0 {
		return fmt.Errorf("%w: empty lattice", ErrBrokenInvariant)
	}
	if l.byExtent.Len() != k {
		return fmt.Errorf("%w: %d extents for %d concepts", ErrBrokenInvariant, l.byExtent.Len(), k)
	}
	for _, c := range l.concepts {
		ok, err := l.conn.IsConcept(c.extent, c.intent)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s is not a concept", ErrBrokenInvariant, c)
		}
	}

	for i := 0; i < k; i++ {
		if isTop := len(l.upper[i]) == 0; isTop != (i == 0) {
			return fmt.Errorf("%w: concept %d maximal=%t", ErrBrokenInvariant, i, isTop)
		}
		if isBottom := len(l.lower[i]) == 0; isBottom != (i == k-1) {
			return fmt.Errorf("%w: concept %d minimal=%t", ErrBrokenInvariant, i, isBottom)
		}
	}

	if _, err := dfs.TopologicalSort(k, func(u int) []int { return l.lower[u] }); err != nil {
		return fmt.Errorf("%w: covering relation: %w", ErrBrokenInvariant, err)
	}

	elems := make([]*disjoint.Element, k)
	for i := range elems {
		elems[i] = disjoint.NewElement()
		elems[i].Data = i
	}
	for _, e := range l.edges {
		disjoint.Union(elems[e.Lower], elems[e.Upper])
	}
	root := elems[0].Find()
	for i, el := range elems {
		if el.Find() != root {
			return fmt.Errorf("%w: concept %d disconnected from top", ErrBrokenInvariant, i)
		}
	}

	for _, walk := range []struct {
		from int
		adj  [][]int
	}{{0, l.lower}, {k - 1, l.upper}} {
		res, err := bfs.BFS(k, walk.from, func(u int) []int { return walk.adj[u] })
		if err != nil {
			return err
		}
		if len(res.Order) != k {
			return fmt.Errorf("%w: %d of %d concepts reachable from %d",
				ErrBrokenInvariant, len(res.Order), k, walk.from)
		}
	}

	return nil
}
