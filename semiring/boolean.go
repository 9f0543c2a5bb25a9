// SPDX-License-Identifier: MIT

package semiring

// Boolean is B = ({false,true}, ∨, ∧, false, true).
// Standard FCA is K-FCA with K = Boolean and φ = true.
type Boolean struct{}

var _ Semiring[bool] = Boolean{}

// Name implements Semiring.
func (Boolean) Name() string { return "Boolean" }

// Zero returns false.
func (Boolean) Zero() bool { return false }

// One returns true.
func (Boolean) One() bool { return true }

// Add returns a ∨ b.
func (Boolean) Add(a, b bool) (bool, error) { return a || b, nil }

// Multiply returns a ∧ b.
func (Boolean) Multiply(a, b bool) (bool, error) { return a && b, nil }

// ResiduateLeft returns the implication a → c.
//
//	a | c | a→c
//	0 | 0 |  1
//	0 | 1 |  1
//	1 | 0 |  0
//	1 | 1 |  1
func (Boolean) ResiduateLeft(a, c bool) (bool, error) { return !a || c, nil }

// ResiduateRight returns b → c; ∧ is commutative.
func (Boolean) ResiduateRight(c, b bool) (bool, error) { return !b || c, nil }

// Equal implements Semiring.
func (Boolean) Equal(a, b bool) bool { return a == b }

// Validate always succeeds: every bool is in the domain.
func (Boolean) Validate(bool) error { return nil }

// Negate returns ¬a = a → false.
func (b Boolean) Negate(a bool) bool {
	r, _ := b.ResiduateLeft(a, false)
	return r
}
