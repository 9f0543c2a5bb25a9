// Package bfs provides breadth-first search over nodes 0..n-1 whose
// successors are supplied by a Neighbors function, returning hop distances,
// parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	n         int
	neighbors Neighbors
	opts      BFSOptions
	ctx       context.Context
	queue     []queueItem
	visited   []bool
	res       *BFSResult
}

// BFS runs breadth-first search over nodes [0, n) starting from start,
// applying any number of functional Options.
// Returns ErrNilNeighbors or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrNeighborOutOfRange when the
// neighbor function misbehaves, or any user-supplied hook error.
func BFS(n, start int, neighbors Neighbors, opts ...Option) (*BFSResult, error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		n:         n,
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		queue:     make([]queueItem, 0, n),
		visited:   make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent (if any),
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.neighbors(item.id) {
		if nbr < 0 || nbr >= w.n {
			return fmt.Errorf("%w: %d -> %d", ErrNeighborOutOfRange, item.id, nbr)
		}
		if !w.opts.FilterNeighbor(item.id, nbr) || w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
