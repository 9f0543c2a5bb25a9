// SPDX-License-Identifier: MIT

package kcontext

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/matrix"
	"github.com/katalvlaran/kfca/semiring"
)

// Context is a K-valued formal context (G, M, R) over the semiring S.
type Context[T any] struct {
	objects    []string
	attributes []string
	objIndex   map[string]int
	attrIndex  map[string]int
	rel        *matrix.Dense[T]
	s          semiring.Semiring[T]
}

// New builds a context from labels, a row-major incidence table and a semiring.
// Implementation:
//   - Stage 1: reject a nil semiring and repeated labels (ErrDuplicateLabel).
//   - Stage 2: copy rows into a dense matrix; a row count other than
//     len(objects) or any row length other than len(attributes) is ErrDimension.
//
// Inputs are copied; later changes to the caller's slices do not leak in.
func New[T any](objects, attributes []string, rows [][]T, s semiring.Semiring[T]) (*Context[T], error) {
	if s == nil {
		return nil, fmt.Errorf("kcontext.New: nil semiring: %w", ErrDimension)
	}
	objIndex, err := indexLabels("object", objects)
	if err != nil {
		return nil, err
	}
	attrIndex, err := indexLabels("attribute", attributes)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(objects) {
		return nil, fmt.Errorf("kcontext.New: %d rows for %d objects: %w", len(rows), len(objects), ErrDimension)
	}
	rel, err := matrix.FromRows(rows, len(attributes))
	if err != nil {
		return nil, fmt.Errorf("kcontext.New: %w: %w", ErrDimension, err)
	}

	return &Context[T]{
		objects:    slices.Clone(objects),
		attributes: slices.Clone(attributes),
		objIndex:   objIndex,
		attrIndex:  attrIndex,
		rel:        rel,
		s:          s,
	}, nil
}

func indexLabels(kind string, labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if j, dup := idx[l]; dup {
			return nil, fmt.Errorf("kcontext.New: %s %q at %d and %d: %w", kind, l, j, i, ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// NumObjects returns n.
func (c *Context[T]) NumObjects() int { return len(c.objects) }

// NumAttributes returns p.
func (c *Context[T]) NumAttributes() int { return len(c.attributes) }

// Semiring returns the instance the incidence values belong to.
func (c *Context[T]) Semiring() semiring.Semiring[T] { return c.s }

// Objects returns a copy of the object labels in index order.
func (c *Context[T]) Objects() []string { return slices.Clone(c.objects) }

// Attributes returns a copy of the attribute labels in index order.
func (c *Context[T]) Attributes() []string { return slices.Clone(c.attributes) }

// Matrix returns a copy of the incidence matrix.
func (c *Context[T]) Matrix() *matrix.Dense[T] { return c.rel.Clone() }

// Incidence returns R(g, m).
func (c *Context[T]) Incidence(g, m int) (T, error) {
	v, err := c.rel.At(g, m)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("kcontext.Incidence(%d,%d): %w", g, m, ErrOutOfRange)
	}

	return v, nil
}

// ObjectRow returns the incidence values of object g over all attributes.
func (c *Context[T]) ObjectRow(g int) ([]T, error) {
	row, err := c.rel.Row(g)
	if err != nil {
		return nil, fmt.Errorf("kcontext.ObjectRow(%d): %w", g, ErrOutOfRange)
	}

	return row, nil
}

// AttributeColumn returns the incidence values of attribute m over all objects.
func (c *Context[T]) AttributeColumn(m int) ([]T, error) {
	col, err := c.rel.Col(m)
	if err != nil {
		return nil, fmt.Errorf("kcontext.AttributeColumn(%d): %w", m, ErrOutOfRange)
	}

	return col, nil
}

// ObjectLabel returns the label of object g.
func (c *Context[T]) ObjectLabel(g int) (string, error) {
	if g < 0 || g >= len(c.objects) {
		return "", fmt.Errorf("kcontext.ObjectLabel(%d): %w", g, ErrOutOfRange)
	}

	return c.objects[g], nil
}

// AttributeLabel returns the label of attribute m.
func (c *Context[T]) AttributeLabel(m int) (string, error) {
	if m < 0 || m >= len(c.attributes) {
		return "", fmt.Errorf("kcontext.AttributeLabel(%d): %w", m, ErrOutOfRange)
	}

	return c.attributes[m], nil
}

// ObjectIndex resolves an object label to its position.
func (c *Context[T]) ObjectIndex(label string) (int, error) {
	if i, ok := c.objIndex[label]; ok {
		return i, nil
	}

	return -1, fmt.Errorf("kcontext.ObjectIndex(%q): %w", label, ErrUnknownLabel)
}

// AttributeIndex resolves an attribute label to its position.
func (c *Context[T]) AttributeIndex(label string) (int, error) {
	if j, ok := c.attrIndex[label]; ok {
		return j, nil
	}

	return -1, fmt.Errorf("kcontext.AttributeIndex(%q): %w", label, ErrUnknownLabel)
}

// ObjectsOf maps an extent to object labels in index order.
// Returns ErrDimension when the vector width is not NumObjects.
func (c *Context[T]) ObjectsOf(extent bitvec.Vector) ([]string, error) {
	return pick("ObjectsOf", c.objects, extent)
}

// AttributesOf maps an intent to attribute labels in index order.
func (c *Context[T]) AttributesOf(intent bitvec.Vector) ([]string, error) {
	return pick("AttributesOf", c.attributes, intent)
}

func pick(op string, labels []string, v bitvec.Vector) ([]string, error) {
	if v.Width() != len(labels) {
		return nil, fmt.Errorf("kcontext.%s: width %d, want %d: %w", op, v.Width(), len(labels), ErrDimension)
	}
	idx := v.Indices()
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = labels[i]
	}

	return out, nil
}

// String renders the context as an aligned table with a bold header row.
func (c *Context[T]) String() string {
	head := color.New(color.Bold)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d×%d\n", head.Sprint("Context["+c.s.Name()+"]"), len(c.objects), len(c.attributes))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "\t")
	for _, a := range c.attributes {
		fmt.Fprintf(tw, "%s\t", a)
	}
	fmt.Fprintln(tw)
	for i, o := range c.objects {
		fmt.Fprintf(tw, "%s\t", o)
		row, _ := c.rel.Row(i)
		for _, v := range row {
			fmt.Fprintf(tw, "%v\t", v)
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()

	return sb.String()
}
