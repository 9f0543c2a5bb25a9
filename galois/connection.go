// SPDX-License-Identifier: MIT

package galois

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/kcontext"
	"github.com/katalvlaran/kfca/matrix"
	"github.com/katalvlaran/kfca/semiring"
)

// ErrLength is returned when a vector width does not match the context side
// it is meant to index.
var ErrLength = errors.New("galois: vector length mismatch")

// ErrNilContext is returned by New for a nil context.
var ErrNilContext = errors.New("galois: nil context")

// Connection is the φ-Galois connection of a context.
type Connection[T any] struct {
	ctx   *kcontext.Context[T]
	pivot T
	n, p  int
	rows  []bitvec.Vector // rows[g]: attributes object g qualifies for
	cols  []bitvec.Vector // cols[m]: objects qualifying for attribute m
	log   *slog.Logger
}

// New binds ctx to pivot.
// Implementation:
//   - Stage 1: Validate the pivot against the semiring domain.
//   - Stage 2: map every incidence to the qualifying predicate
//     e ≤ φ\R(g,m); an out-of-domain value or one incomparable to φ
//     surfaces as semiring.ErrDomain with its coordinates.
//   - Stage 3: pack the Boolean relation into row and column bit vectors.
//
// Complexity: O(n*p) semiring operations.
func New[T any](ctx *kcontext.Context[T], pivot T, opts ...Option) (*Connection[T], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	o := gatherOptions(opts...)
	s := ctx.Semiring()
	if err := s.Validate(pivot); err != nil {
		return nil, fmt.Errorf("galois.New: pivot: %w", err)
	}

	rel, err := matrix.Map(ctx.Matrix(), func(v T) (bool, error) {
		return qualifies(s, pivot, v)
	})
	if err != nil {
		return nil, fmt.Errorf("galois.New: %w", err)
	}

	c := &Connection[T]{
		ctx:   ctx,
		pivot: pivot,
		n:     rel.Rows(),
		p:     rel.Cols(),
		rows:  make([]bitvec.Vector, rel.Rows()),
		cols:  make([]bitvec.Vector, rel.Cols()),
		log:   o.logger,
	}
	t := rel.Transpose()
	for g := range c.rows {
		r, _ := rel.Row(g)
		c.rows[g] = bitvec.FromBools(r)
	}
	for m := range c.cols {
		col, _ := t.Row(m)
		c.cols[m] = bitvec.FromBools(col)
	}
	c.log.Debug("galois connection ready",
		slog.String("semiring", s.Name()),
		slog.Any("pivot", pivot),
		slog.Int("objects", c.n),
		slog.Int("attributes", c.p))

	return c, nil
}

// NewAtOne binds ctx to the semiring's multiplicative identity, the pivot
// under which Boolean contexts reduce to classical FCA.
func NewAtOne[T any](ctx *kcontext.Context[T], opts ...Option) (*Connection[T], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	return New(ctx, ctx.Semiring().One(), opts...)
}

// qualifies reports e ≤ φ\v, rejecting values outside the domain or
// incomparable to φ.
func qualifies[T any](s semiring.Semiring[T], pivot, v T) (bool, error) {
	if err := s.Validate(v); err != nil {
		return false, err
	}
	ok, err := semiring.Comparable(s, pivot, v)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%s: %v incomparable to pivot %v: %w", s.Name(), v, pivot, semiring.ErrDomain)
	}
	r, err := s.ResiduateLeft(pivot, v)
	if err != nil {
		return false, err
	}

	return semiring.Leq(s, s.One(), r)
}

// Context returns the underlying context.
func (c *Connection[T]) Context() *kcontext.Context[T] { return c.ctx }

// Pivot returns φ.
func (c *Connection[T]) Pivot() T { return c.pivot }

// Qualifies reports whether object g qualifies for attribute m.
// Out-of-range indices report false.
func (c *Connection[T]) Qualifies(g, m int) bool {
	if g < 0 || g >= c.n {
		return false
	}

	return c.rows[g].Test(m)
}

// RightPolar returns the attributes qualified by every object in extent.
// The empty extent maps to all attributes.
func (c *Connection[T]) RightPolar(extent bitvec.Vector) (bitvec.Vector, error) {
	if extent.Width() != c.n {
		return bitvec.Vector{}, lengthErrorf("RightPolar", extent.Width(), c.n)
	}

	return meetAll(bitvec.Full(c.p), c.rows, extent.Indices()), nil
}

// LeftPolar returns the objects qualifying for every attribute in intent.
// The empty intent maps to all objects.
func (c *Connection[T]) LeftPolar(intent bitvec.Vector) (bitvec.Vector, error) {
	if intent.Width() != c.p {
		return bitvec.Vector{}, lengthErrorf("LeftPolar", intent.Width(), c.p)
	}

	return meetAll(bitvec.Full(c.n), c.cols, intent.Indices()), nil
}

// meetAll intersects acc with lines[k] for every k in idx. All vectors share
// a width, so Intersect cannot fail.
func meetAll(acc bitvec.Vector, lines []bitvec.Vector, idx []int) bitvec.Vector {
	for _, k := range idx {
		acc, _ = acc.Intersect(lines[k])
		if acc.Empty() {
			break
		}
	}

	return acc
}

// ExtentClosure returns LeftPolar(RightPolar(extent)).
func (c *Connection[T]) ExtentClosure(extent bitvec.Vector) (bitvec.Vector, error) {
	intent, err := c.RightPolar(extent)
	if err != nil {
		return bitvec.Vector{}, err
	}

	return c.LeftPolar(intent)
}

// IntentClosure returns RightPolar(LeftPolar(intent)).
func (c *Connection[T]) IntentClosure(intent bitvec.Vector) (bitvec.Vector, error) {
	extent, err := c.LeftPolar(intent)
	if err != nil {
		return bitvec.Vector{}, err
	}

	return c.RightPolar(extent)
}

// IsClosedExtent reports ExtentClosure(extent) == extent.
func (c *Connection[T]) IsClosedExtent(extent bitvec.Vector) (bool, error) {
	cl, err := c.ExtentClosure(extent)
	if err != nil {
		return false, err
	}

	return cl.Equal(extent), nil
}

// IsClosedIntent reports IntentClosure(intent) == intent.
func (c *Connection[T]) IsClosedIntent(intent bitvec.Vector) (bool, error) {
	cl, err := c.IntentClosure(intent)
	if err != nil {
		return false, err
	}

	return cl.Equal(intent), nil
}

// IsConcept reports RightPolar(extent) == intent and LeftPolar(intent) == extent.
func (c *Connection[T]) IsConcept(extent, intent bitvec.Vector) (bool, error) {
	in, err := c.RightPolar(extent)
	if err != nil {
		return false, err
	}
	ex, err := c.LeftPolar(intent)
	if err != nil {
		return false, err
	}

	return in.Equal(intent) && ex.Equal(extent), nil
}

func lengthErrorf(op string, got, want int) error {
	return fmt.Errorf("galois.%s: width %d, want %d: %w", op, got, want, ErrLength)
}
