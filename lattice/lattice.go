// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/fatih/color"

	"github.com/katalvlaran/kfca/bfs"
	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/kcontext"
)

// Lattice is an immutable, ordered set of φ-concepts with its covering
// relation. Concept 0 is the top and the last concept is the bottom.
// All methods are safe for concurrent use.
type Lattice[T any] struct {
	ctx      *kcontext.Context[T]
	conn     *galois.Connection[T]
	method   Method
	concepts []Concept
	byExtent *immutable.Map[bitvec.Vector, int]
	upper    [][]int // upper[i]: covers of i, ascending
	lower    [][]int // lower[i]: concepts covered by i, ascending
	edges    []Edge
}

// cover computes the transitive reduction of the extent-inclusion order by
// pairwise comparison. Concepts are sorted by descending extent size, so
// every strict upper bound of i has a smaller index.
func (l *Lattice[T]) cover() {
	k := len(l.concepts)
	less := func(i, j int) bool { return l.concepts[i].extent.ProperSubsetOf(l.concepts[j].extent) }
	l.upper = make([][]int, k)
	l.lower = make([][]int, k)
	l.edges = l.edges[:0]
	for i := 0; i < k; i++ {
		var above []int
		for j := 0; j < i; j++ {
			if less(i, j) {
				above = append(above, j)
			}
		}
		for _, j := range above {
			covered := true
			for _, m := range above {
				if m != j && less(m, j) {
					covered = false
					break
				}
			}
			if covered {
				l.upper[i] = append(l.upper[i], j)
				l.lower[j] = append(l.lower[j], i)
			}
		}
	}
	for i := range l.upper {
		for _, j := range l.upper[i] {
			l.edges = append(l.edges, Edge{Lower: i, Upper: j})
		}
	}
}

// Context returns the context the lattice was built from.
func (l *Lattice[T]) Context() *kcontext.Context[T] { return l.ctx }

// Connection returns the Galois connection the lattice was built from.
func (l *Lattice[T]) Connection() *galois.Connection[T] { return l.conn }

// Method returns the generation strategy used by Build.
func (l *Lattice[T]) Method() Method { return l.method }

// ConceptCount returns the number of concepts.
func (l *Lattice[T]) ConceptCount() int { return len(l.concepts) }

// ConceptAt returns the concept at index i.
func (l *Lattice[T]) ConceptAt(i int) (Concept, error) {
	if i < 0 || i >= len(l.concepts) {
		return Concept{}, fmt.Errorf("lattice.ConceptAt(%d): %w", i, ErrOutOfRange)
	}

	return l.concepts[i], nil
}

// Concepts returns all concepts in lattice order.
func (l *Lattice[T]) Concepts() []Concept { return slices.Clone(l.concepts) }

// Top returns the concept with the largest extent.
func (l *Lattice[T]) Top() Concept { return l.concepts[0] }

// Bottom returns the concept with the largest intent.
func (l *Lattice[T]) Bottom() Concept { return l.concepts[len(l.concepts)-1] }

// Edges returns the covering relation ordered by (Lower, Upper).
func (l *Lattice[T]) Edges() []Edge { return slices.Clone(l.edges) }

// Find returns the concept whose extent equals extent.
func (l *Lattice[T]) Find(extent bitvec.Vector) (Concept, bool) {
	i, ok := l.byExtent.Get(extent)
	if !ok {
		return Concept{}, false
	}

	return l.concepts[i], true
}

// own rejects concepts that were not produced by l.
func (l *Lattice[T]) own(op string, c Concept) error {
	if c.index < 0 || c.index >= len(l.concepts) || !l.concepts[c.index].extent.Equal(c.extent) {
		return fmt.Errorf("lattice.%s(%s): %w", op, c, ErrForeignConcept)
	}

	return nil
}

// ObjectsOf returns the object labels of c's extent.
func (l *Lattice[T]) ObjectsOf(c Concept) ([]string, error) {
	if err := l.own("ObjectsOf", c); err != nil {
		return nil, err
	}

	return l.ctx.ObjectsOf(c.extent)
}

// AttributesOf returns the attribute labels of c's intent.
func (l *Lattice[T]) AttributesOf(c Concept) ([]string, error) {
	if err := l.own("AttributesOf", c); err != nil {
		return nil, err
	}

	return l.ctx.AttributesOf(c.intent)
}

// UpperNeighbors returns the concepts that cover c.
func (l *Lattice[T]) UpperNeighbors(c Concept) ([]Concept, error) {
	if err := l.own("UpperNeighbors", c); err != nil {
		return nil, err
	}

	return l.pick(l.upper[c.index]), nil
}

// LowerNeighbors returns the concepts covered by c.
func (l *Lattice[T]) LowerNeighbors(c Concept) ([]Concept, error) {
	if err := l.own("LowerNeighbors", c); err != nil {
		return nil, err
	}

	return l.pick(l.lower[c.index]), nil
}

// Leq reports a ≤ b, i.e. extent(a) ⊆ extent(b).
func (l *Lattice[T]) Leq(a, b Concept) (bool, error) {
	if err := l.own("Leq", a); err != nil {
		return false, err
	}
	if err := l.own("Leq", b); err != nil {
		return false, err
	}

	return a.extent.SubsetOf(b.extent), nil
}

// Meet returns the greatest common lower bound: extent ExtentClosure(A₁ ∩ A₂).
// ErrNotFound when the result was not materialized by a partial method.
func (l *Lattice[T]) Meet(a, b Concept) (Concept, error) {
	if err := l.own("Meet", a); err != nil {
		return Concept{}, err
	}
	if err := l.own("Meet", b); err != nil {
		return Concept{}, err
	}
	x, err := a.extent.Intersect(b.extent)
	if err != nil {
		return Concept{}, err
	}
	ext, err := l.conn.ExtentClosure(x)
	if err != nil {
		return Concept{}, err
	}

	return l.lookup("Meet", ext)
}

// Join returns the least common upper bound: extent LeftPolar(B₁ ∩ B₂).
func (l *Lattice[T]) Join(a, b Concept) (Concept, error) {
	if err := l.own("Join", a); err != nil {
		return Concept{}, err
	}
	if err := l.own("Join", b); err != nil {
		return Concept{}, err
	}
	y, err := a.intent.Intersect(b.intent)
	if err != nil {
		return Concept{}, err
	}
	ext, err := l.conn.LeftPolar(y)
	if err != nil {
		return Concept{}, err
	}

	return l.lookup("Join", ext)
}

func (l *Lattice[T]) lookup(op string, extent bitvec.Vector) (Concept, error) {
	c, ok := l.Find(extent)
	if !ok {
		return Concept{}, fmt.Errorf("lattice.%s: extent %s: %w", op, extent, ErrNotFound)
	}

	return c, nil
}

// UpSet returns c and every concept above it, in index order.
func (l *Lattice[T]) UpSet(c Concept) ([]Concept, error) {
	if err := l.own("UpSet", c); err != nil {
		return nil, err
	}

	return l.reach(c.index, l.upper)
}

// DownSet returns c and every concept below it, in index order.
func (l *Lattice[T]) DownSet(c Concept) ([]Concept, error) {
	if err := l.own("DownSet", c); err != nil {
		return nil, err
	}

	return l.reach(c.index, l.lower)
}

func (l *Lattice[T]) reach(from int, adj [][]int) ([]Concept, error) {
	res, err := bfs.BFS(len(l.concepts), from, func(u int) []int { return adj[u] })
	if err != nil {
		return nil, err
	}
	idx := slices.Clone(res.Order)
	slices.Sort(idx)

	return l.pick(idx), nil
}

func (l *Lattice[T]) pick(idx []int) []Concept {
	out := make([]Concept, len(idx))
	for k, i := range idx {
		out[k] = l.concepts[i]
	}

	return out
}

// String lists every concept with labels and its upper neighbors.
func (l *Lattice[T]) String() string {
	head := color.New(color.Bold)
	dim := color.New(color.Faint)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d concepts, %d edges (%s)\n",
		head.Sprint("Lattice"), len(l.concepts), len(l.edges), l.method)
	for _, c := range l.concepts {
		objs, _ := l.ctx.ObjectsOf(c.extent)
		attrs, _ := l.ctx.AttributesOf(c.intent)
		fmt.Fprintf(&sb, "%s (%s) [%s]", head.Sprintf("#%d", c.index),
			strings.Join(objs, ", "), strings.Join(attrs, ", "))
		if ups := l.upper[c.index]; len(ups) > 0 {
			fmt.Fprintf(&sb, " %s %v", dim.Sprint("<"), ups)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
