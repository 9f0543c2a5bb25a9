// SPDX-License-Identifier: MIT

// Package semiring: the Semiring contract and the folds derived from it.
package semiring

import (
	"errors"
	"fmt"
)

// ErrDomain is returned when an operand lies outside the semiring's
// representable domain. It signals caller misuse, not a transient condition.
var ErrDomain = errors.New("semiring: value outside domain")

// domainErrorf wraps ErrDomain with the instance name, the operation and the
// offending value.
func domainErrorf(name, op string, v any) error {
	return fmt.Errorf("%s.%s(%v): %w", name, op, v, ErrDomain)
}

// Semiring is an idempotent semiring (K, ⊕, ⊗, ε, e) with residuation.
//
// Laws every implementation MUST satisfy on its domain:
//   - Add is commutative, associative and idempotent, with identity Zero.
//   - Multiply is associative with identity One and distributes over Add.
//   - Zero absorbs under Multiply.
//   - ResiduateLeft(a, c) is the greatest x with Multiply(a, x) ≤ c.
//   - ResiduateRight(c, b) is the greatest x with Multiply(x, b) ≤ c.
//
// Implementations are stateless values and safe for concurrent use.
type Semiring[T any] interface {
	// Name identifies the instance in error messages and String output.
	Name() string

	// Zero returns ε, the additive identity and the bottom of the natural order.
	Zero() T

	// One returns e, the multiplicative identity.
	One() T

	// Add returns a ⊕ b.
	Add(a, b T) (T, error)

	// Multiply returns a ⊗ b.
	Multiply(a, b T) (T, error)

	// ResiduateLeft returns a\c.
	ResiduateLeft(a, c T) (T, error)

	// ResiduateRight returns c/b.
	ResiduateRight(c, b T) (T, error)

	// Equal reports value equality on the domain.
	Equal(a, b T) bool

	// Validate returns ErrDomain when v is not a member of the domain.
	Validate(v T) error
}

// Leq reports a ≤ b under the natural order, derived as a ⊕ b == b.
func Leq[T any](s Semiring[T], a, b T) (bool, error) {
	sum, err := s.Add(a, b)
	if err != nil {
		return false, err
	}

	return s.Equal(sum, b), nil
}

// Comparable reports whether a ≤ b or b ≤ a.
func Comparable[T any](s Semiring[T], a, b T) (bool, error) {
	le, err := Leq(s, a, b)
	if err != nil || le {
		return le, err
	}

	return Leq(s, b, a)
}

// Sum folds values with Add starting from Zero. An empty input yields Zero.
func Sum[T any](s Semiring[T], values ...T) (T, error) {
	acc := s.Zero()
	var err error
	for _, v := range values {
		if acc, err = s.Add(acc, v); err != nil {
			return s.Zero(), err
		}
	}

	return acc, nil
}

// Product folds values with Multiply starting from One. An empty input yields One.
func Product[T any](s Semiring[T], values ...T) (T, error) {
	acc := s.One()
	var err error
	for _, v := range values {
		if acc, err = s.Multiply(acc, v); err != nil {
			return s.One(), err
		}
	}

	return acc, nil
}

// Dot returns ⊕_j x[j] ⊗ y[j]. The operands must have equal length.
// Complexity: O(len(x)).
func Dot[T any](s Semiring[T], x, y []T) (T, error) {
	if len(x) != len(y) {
		return s.Zero(), fmt.Errorf("%s.Dot: length %d != %d: %w", s.Name(), len(x), len(y), ErrDomain)
	}
	acc := s.Zero()
	for j := range x {
		p, err := s.Multiply(x[j], y[j])
		if err != nil {
			return s.Zero(), err
		}
		if acc, err = s.Add(acc, p); err != nil {
			return s.Zero(), err
		}
	}

	return acc, nil
}
