// SPDX-License-Identifier: MIT

package semiring

import "math"

// MinPlus is the tropical semiring R_min,+ = (ℝ ∪ {-∞, +∞}, min, +, +∞, 0).
//
// Behavior highlights:
//   - Natural order is numeric ≥: a ≤ b ⟺ min(a, b) = b. +∞ is the bottom.
//   - +∞ absorbs under ⊗, including +∞ ⊗ -∞ = +∞.
//   - NaN is outside the domain and yields ErrDomain.
type MinPlus struct{}

var _ Semiring[float64] = MinPlus{}

// Name implements Semiring.
func (MinPlus) Name() string { return "MinPlus" }

// Zero returns +∞.
func (MinPlus) Zero() float64 { return math.Inf(1) }

// One returns 0.
func (MinPlus) One() float64 { return 0 }

// Add returns min(a, b).
func (s MinPlus) Add(a, b float64) (float64, error) {
	if err := s.check("Add", a, b); err != nil {
		return math.NaN(), err
	}

	return math.Min(a, b), nil
}

// Multiply returns a + b with +∞ absorbing.
func (s MinPlus) Multiply(a, b float64) (float64, error) {
	if err := s.check("Multiply", a, b); err != nil {
		return math.NaN(), err
	}
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.Inf(1), nil
	}

	return a + b, nil
}

// ResiduateLeft returns a\c, the greatest x in the natural order (the
// numerically smallest x) with a + x ≥ c.
//
// Saturation at the extended boundary:
//   - a = +∞            ⇒ -∞ (every x qualifies)
//   - c = +∞, a < +∞    ⇒ +∞
//   - a = -∞            ⇒ -∞ if c = -∞, else +∞
//   - otherwise         ⇒ c - a
func (s MinPlus) ResiduateLeft(a, c float64) (float64, error) {
	if err := s.check("ResiduateLeft", a, c); err != nil {
		return math.NaN(), err
	}
	switch {
	case math.IsInf(a, 1):
		return math.Inf(-1), nil
	case math.IsInf(c, 1):
		return math.Inf(1), nil
	case math.IsInf(a, -1):
		if math.IsInf(c, -1) {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	return c - a, nil
}

// ResiduateRight returns c/b; ⊗ is commutative so c/b = b\c.
func (s MinPlus) ResiduateRight(c, b float64) (float64, error) {
	return s.ResiduateLeft(b, c)
}

// Equal implements Semiring.
func (MinPlus) Equal(a, b float64) bool { return a == b }

// Validate rejects NaN.
func (s MinPlus) Validate(v float64) error {
	if math.IsNaN(v) {
		return domainErrorf(s.Name(), "Validate", v)
	}

	return nil
}

// Inverse returns -a, the multiplicative inverse of every element but ε.
func (s MinPlus) Inverse(a float64) (float64, error) {
	if err := s.Validate(a); err != nil {
		return math.NaN(), err
	}
	if math.IsInf(a, 1) {
		return math.NaN(), domainErrorf(s.Name(), "Inverse", a)
	}

	return -a, nil
}

func (s MinPlus) check(op string, a, b float64) error {
	if math.IsNaN(a) {
		return domainErrorf(s.Name(), op, a)
	}
	if math.IsNaN(b) {
		return domainErrorf(s.Name(), op, b)
	}

	return nil
}
