// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/benbjohnson/immutable"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/kcontext"
)

// builder holds the state of one enumeration run.
type builder[T any] struct {
	conn  *galois.Connection[T]
	n, p  int
	opts  options
	seen  *immutable.Map[bitvec.Vector, bitvec.Vector] // extent → intent
	found []bitvec.Vector                              // extents in discovery order
}

// Build enumerates the φ-concepts of conn and orders them into a lattice.
// Implementation:
//   - Stage 1: top = ExtentClosure(G), bottom = LeftPolar(M).
//   - Stage 2: object concepts ExtentClosure({g}) and attribute concepts
//     LeftPolar(IntentClosure({m})), evaluated on a bounded errgroup.
//   - Stage 3 (MethodCanonical): work-list fixed point; each newly found
//     extent is paired with every known one, and the meet
//     ExtentClosure(A₁ ∩ A₂) and join LeftPolar(B₁ ∩ B₂) are registered.
//   - Stage 4: sort by descending extent size then lexical index order,
//     compute the covering relation, and Validate.
//
// Every candidate is checked with the polars before registration; a
// mismatch is ErrBrokenInvariant. No partial lattice is returned.
//
// Complexity: the concept count k is worst-case exponential in min(n, p).
// Stage 3 performs O(k²) closures of O(n*p/64) each; the covering relation
// costs O(k³) subset tests.
func Build[T any](ctx *kcontext.Context[T], conn *galois.Connection[T], opts ...Option) (*Lattice[T], error) {
	if ctx == nil || conn == nil || conn.Context() != ctx {
		return nil, ErrContextMismatch
	}
	o := gatherOptions(opts...)
	start := time.Now()

	l, err := build(ctx, conn, o)
	count := 0
	if l != nil {
		count = len(l.concepts)
	}
	o.metrics.finish(o.method, start, count, err)
	if err != nil {
		o.logger.Warn("lattice build failed", slog.String("method", o.method.String()), slog.Any("error", err))
		return nil, err
	}
	o.logger.Info("lattice built",
		slog.String("method", o.method.String()),
		slog.Int("concepts", count),
		slog.Int("edges", len(l.edges)),
		slog.Duration("elapsed", time.Since(start)))

	return l, nil
}

func build[T any](ctx *kcontext.Context[T], conn *galois.Connection[T], o options) (*Lattice[T], error) {
	b := &builder[T]{
		conn: conn,
		n:    ctx.NumObjects(),
		p:    ctx.NumAttributes(),
		opts: o,
		seen: immutable.NewMap[bitvec.Vector, bitvec.Vector](bitvec.Hasher{}),
	}

	top, err := conn.ExtentClosure(bitvec.Full(b.n))
	if err != nil {
		return nil, err
	}
	bottom, err := conn.LeftPolar(bitvec.Full(b.p))
	if err != nil {
		return nil, err
	}
	for _, e := range []bitvec.Vector{top, bottom} {
		if _, err := b.add(e); err != nil {
			return nil, err
		}
	}

	seeds, err := b.singletons()
	if err != nil {
		return nil, err
	}
	for _, e := range seeds {
		if _, err := b.add(e); err != nil {
			return nil, err
		}
	}
	o.logger.Debug("generators closed",
		slog.Int("candidates", len(seeds)),
		slog.Int("distinct", len(b.found)))

	if o.method == MethodCanonical {
		if err := b.fixedPoint(); err != nil {
			return nil, err
		}
		o.logger.Debug("fixed point reached", slog.Int("concepts", len(b.found)))
	}

	return b.assemble(ctx)
}

// add registers extent if unseen and reports whether it was new.
func (b *builder[T]) add(extent bitvec.Vector) (bool, error) {
	if _, ok := b.seen.Get(extent); ok {
		b.opts.metrics.duplicate()
		return false, nil
	}
	intent, err := b.conn.RightPolar(extent)
	if err != nil {
		return false, err
	}
	back, err := b.conn.LeftPolar(intent)
	if err != nil {
		return false, err
	}
	if !back.Equal(extent) {
		return false, fmt.Errorf("%w: extent %s is not closed", ErrBrokenInvariant, extent)
	}
	if b.opts.maxConcepts > 0 && b.seen.Len() >= b.opts.maxConcepts {
		return false, fmt.Errorf("%w: more than %d", ErrTooManyConcepts, b.opts.maxConcepts)
	}
	b.seen = b.seen.Set(extent, intent)
	b.found = append(b.found, extent)

	return true, nil
}

// singletons closes every object and/or attribute generator in parallel.
// Results land in fixed slots so registration order stays deterministic.
func (b *builder[T]) singletons() ([]bitvec.Vector, error) {
	var gens []func() (bitvec.Vector, error)
	if b.opts.method != MethodAttributes {
		for g := 0; g < b.n; g++ {
			gens = append(gens, func() (bitvec.Vector, error) {
				x, err := bitvec.Singleton(b.n, g)
				if err != nil {
					return bitvec.Vector{}, err
				}
				return b.conn.ExtentClosure(x)
			})
		}
	}
	if b.opts.method != MethodObjects {
		for m := 0; m < b.p; m++ {
			gens = append(gens, func() (bitvec.Vector, error) {
				y, err := bitvec.Singleton(b.p, m)
				if err != nil {
					return bitvec.Vector{}, err
				}
				intent, err := b.conn.IntentClosure(y)
				if err != nil {
					return bitvec.Vector{}, err
				}
				return b.conn.LeftPolar(intent)
			})
		}
	}

	out := make([]bitvec.Vector, len(gens))
	eg, egctx := errgroup.WithContext(b.opts.ctx)
	eg.SetLimit(b.opts.workers)
	for k, gen := range gens {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			e, err := gen()
			if err != nil {
				return err
			}
			b.opts.metrics.closure()
			out[k] = e
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// fixedPoint pairs every newly registered extent with all known ones until
// no pair yields a new extent. Each unordered pair is visited once: when the
// later of the two leaves the queue, the earlier is already in found.
func (b *builder[T]) fixedPoint() error {
	queue := slices.Clone(b.found)
	for len(queue) > 0 {
		if err := b.opts.ctx.Err(); err != nil {
			return err
		}
		e := queue[0]
		queue = queue[1:]
		ei, _ := b.seen.Get(e)

		known := len(b.found)
		for k := 0; k < known; k++ {
			f := b.found[k]
			fi, _ := b.seen.Get(f)

			meet, err := b.meet(e, f)
			if err != nil {
				return err
			}
			join, err := b.join(ei, fi)
			if err != nil {
				return err
			}
			for _, cand := range []bitvec.Vector{meet, join} {
				isNew, err := b.add(cand)
				if err != nil {
					return err
				}
				if isNew {
					queue = append(queue, cand)
				}
			}
		}
	}

	return nil
}

func (b *builder[T]) meet(e, f bitvec.Vector) (bitvec.Vector, error) {
	x, err := e.Intersect(f)
	if err != nil {
		return bitvec.Vector{}, err
	}
	b.opts.metrics.closure()

	return b.conn.ExtentClosure(x)
}

func (b *builder[T]) join(ei, fi bitvec.Vector) (bitvec.Vector, error) {
	y, err := ei.Intersect(fi)
	if err != nil {
		return bitvec.Vector{}, err
	}
	b.opts.metrics.closure()

	return b.conn.LeftPolar(y)
}

// assemble sorts the registry, indexes it and derives the covering relation.
func (b *builder[T]) assemble(ctx *kcontext.Context[T]) (*Lattice[T], error) {
	extents := slices.Clone(b.found)
	slices.SortFunc(extents, bitvec.Vector.Compare)

	l := &Lattice[T]{
		ctx:      ctx,
		conn:     b.conn,
		method:   b.opts.method,
		concepts: make([]Concept, len(extents)),
	}
	ib := immutable.NewMapBuilder[bitvec.Vector, int](bitvec.Hasher{})
	for i, e := range extents {
		intent, _ := b.seen.Get(e)
		l.concepts[i] = Concept{index: i, extent: e, intent: intent}
		ib.Set(e, i)
	}
	l.byExtent = ib.Map()
	l.cover()

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}
