// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"slices"
)

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	n         int
	neighbors Neighbors
	opts      topoOptions
	state     []int // White/Gray/Black per vertex
	stack     []int // current Gray path, root first
	order     []int // post-order
}

// TopologicalSort computes a topological ordering of the n vertices.
// On a cycle it returns an error wrapping ErrCycleDetected whose message
// lists the cycle, e.g. "dfs: cycle detected: [1 2 1]".
func TopologicalSort(n int, neighbors Neighbors, options ...TopoOption) ([]int, error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	t := &topoSorter{
		n:         n,
		neighbors: neighbors,
		opts:      opts,
		state:     make([]int, n),
		order:     make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

func (t *topoSorter) visit(u int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[u] = Gray
	t.stack = append(t.stack, u)

	for _, v := range t.neighbors(u) {
		if v < 0 || v >= t.n {
			return fmt.Errorf("%w: %d -> %d", ErrNeighborOutOfRange, u, v)
		}
		switch t.state[v] {
		case Gray:
			at := slices.Index(t.stack, v)
			cycle := append(slices.Clone(t.stack[at:]), v)
			return fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
		case White:
			if err := t.visit(v); err != nil {
				return err
			}
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[u] = Black
	t.order = append(t.order, u)

	return nil
}
