// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrNilNeighbors is returned if a nil neighbor function is passed.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrNeighborOutOfRange indicates a neighbor outside [0, n).
	ErrNeighborOutOfRange = errors.New("dfs: neighbor out of range")

	// ErrCycleDetected indicates that a back-arc was found.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Neighbors returns the successors of u. The slice is only read.
type Neighbors func(u int) []int

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
