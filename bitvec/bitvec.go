// SPDX-License-Identifier: MIT

// Package bitvec provides immutable fixed-width indicator vectors used as
// concept extents (over objects) and intents (over attributes).
//
// A Vector never changes after construction: every set operation returns a
// fresh Vector. Equality, hashing and ordering are O(width/64), which keeps
// extent-keyed deduplication cheap.
package bitvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// ErrWidthMismatch is returned when two vectors of different widths are combined.
var ErrWidthMismatch = errors.New("bitvec: width mismatch")

// ErrOutOfRange is returned when an index is outside [0, width).
var ErrOutOfRange = errors.New("bitvec: index out of range")

// Vector is an immutable indicator vector of a fixed width.
// The zero Vector has width 0.
type Vector struct {
	width int
	bits  *bitset.BitSet
}

// New returns the empty vector of the given width.
func New(width int) Vector {
	if width < 0 {
		width = 0
	}

	return Vector{width: width, bits: bitset.New(uint(width))}
}

// Full returns the vector of the given width with every position set.
func Full(width int) Vector {
	v := New(width)
	for i := 0; i < v.width; i++ {
		v.bits.Set(uint(i))
	}

	return v
}

// FromIndices returns a vector with exactly the given positions set.
// Returns ErrOutOfRange if any index is outside [0, width).
func FromIndices(width int, idx ...int) (Vector, error) {
	v := New(width)
	for _, i := range idx {
		if i < 0 || i >= v.width {
			return Vector{}, fmt.Errorf("bitvec.FromIndices(%d): %w", i, ErrOutOfRange)
		}
		v.bits.Set(uint(i))
	}

	return v, nil
}

// Singleton returns the vector with only position i set.
func Singleton(width, i int) (Vector, error) {
	return FromIndices(width, i)
}

// FromBools returns a vector with position i set iff flags[i] is true.
func FromBools(flags []bool) Vector {
	v := New(len(flags))
	for i, f := range flags {
		if f {
			v.bits.Set(uint(i))
		}
	}

	return v
}

// Width returns the fixed number of positions.
func (v Vector) Width() int { return v.width }

// Test reports whether position i is set. Out-of-range positions are unset.
func (v Vector) Test(i int) bool {
	if i < 0 || i >= v.width || v.bits == nil {
		return false
	}

	return v.bits.Test(uint(i))
}

// Count returns the number of set positions.
func (v Vector) Count() int {
	if v.bits == nil {
		return 0
	}

	return int(v.bits.Count())
}

// Empty reports whether no position is set.
func (v Vector) Empty() bool { return v.Count() == 0 }

// Indices returns the set positions in ascending order.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	if v.bits == nil {
		return out
	}
	for i, ok := v.bits.NextSet(0); ok && int(i) < v.width; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Bools returns the vector as a []bool of length Width.
func (v Vector) Bools() []bool {
	out := make([]bool, v.width)
	for _, i := range v.Indices() {
		out[i] = true
	}

	return out
}

// With returns a copy of v with position i set.
func (v Vector) With(i int) (Vector, error) {
	if i < 0 || i >= v.width {
		return Vector{}, fmt.Errorf("bitvec.With(%d): %w", i, ErrOutOfRange)
	}
	out := v.clone()
	out.bits.Set(uint(i))

	return out, nil
}

// Intersect returns v ∩ w.
func (v Vector) Intersect(w Vector) (Vector, error) {
	if err := v.sameWidth("Intersect", w); err != nil {
		return Vector{}, err
	}

	return Vector{width: v.width, bits: v.words().Intersection(w.words())}, nil
}

// Union returns v ∪ w.
func (v Vector) Union(w Vector) (Vector, error) {
	if err := v.sameWidth("Union", w); err != nil {
		return Vector{}, err
	}

	return Vector{width: v.width, bits: v.words().Union(w.words())}, nil
}

// SubsetOf reports v ⊆ w. Vectors of different widths are never subsets.
func (v Vector) SubsetOf(w Vector) bool {
	if v.width != w.width {
		return false
	}

	return w.words().IsSuperSet(v.words())
}

// ProperSubsetOf reports v ⊊ w.
func (v Vector) ProperSubsetOf(w Vector) bool {
	return v.SubsetOf(w) && v.Count() < w.Count()
}

// Equal reports identical width and identical set positions.
func (v Vector) Equal(w Vector) bool {
	if v.width != w.width {
		return false
	}

	return v.words().Equal(w.words())
}

// Hash returns a 32-bit digest of the width and the set positions.
// Equal vectors always hash equally.
func (v Vector) Hash() uint32 {
	buf := make([]byte, 0, 8*(1+len(v.words().Bytes())))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(v.width))
	for _, w := range v.words().Bytes() {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	sum := xxhash.Sum64(buf)

	return uint32(sum ^ sum>>32)
}

// Compare orders vectors by descending cardinality, then by the ascending
// lexical order of their index lists. It returns -1, 0 or +1.
// Vectors with more positions come first.
func (v Vector) Compare(w Vector) int {
	cv, cw := v.Count(), w.Count()
	switch {
	case cv > cw:
		return -1
	case cv < cw:
		return 1
	}
	iv, iw := v.Indices(), w.Indices()
	for k := range iv {
		switch {
		case iv[k] < iw[k]:
			return -1
		case iv[k] > iw[k]:
			return 1
		}
	}

	return 0
}

// String renders the set positions as "{0,2,4}".
func (v Vector) String() string {
	idx := v.Indices()
	parts := make([]string, len(idx))
	for k, i := range idx {
		parts[k] = strconv.Itoa(i)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// words returns the backing bitset, never nil.
func (v Vector) words() *bitset.BitSet {
	if v.bits == nil {
		return bitset.New(0)
	}

	return v.bits
}

func (v Vector) clone() Vector {
	return Vector{width: v.width, bits: v.words().Clone()}
}

func (v Vector) sameWidth(op string, w Vector) error {
	if v.width != w.width {
		return fmt.Errorf("bitvec.%s(%d,%d): %w", op, v.width, w.width, ErrWidthMismatch)
	}

	return nil
}

// Hasher hashes and compares vectors; it satisfies immutable.Hasher[Vector]
// so vectors can key persistent maps.
type Hasher struct{}

// Hash implements immutable.Hasher.
func (Hasher) Hash(v Vector) uint32 { return v.Hash() }

// Equal implements immutable.Hasher.
func (Hasher) Equal(a, b Vector) bool { return a.Equal(b) }
