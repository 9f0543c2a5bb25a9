// SPDX-License-Identifier: MIT

package semiring

import "math"

// Fuzzy is the Gödel semiring G = ([0,1], max, min, 0, 1) used for graded
// membership. Values outside [0,1] and NaN yield ErrDomain.
type Fuzzy struct{}

var _ Semiring[float64] = Fuzzy{}

// Name implements Semiring.
func (Fuzzy) Name() string { return "Fuzzy" }

// Zero returns 0.
func (Fuzzy) Zero() float64 { return 0 }

// One returns 1.
func (Fuzzy) One() float64 { return 1 }

// Add returns max(a, b) (fuzzy OR).
func (s Fuzzy) Add(a, b float64) (float64, error) {
	if err := s.check("Add", a, b); err != nil {
		return math.NaN(), err
	}

	return math.Max(a, b), nil
}

// Multiply returns min(a, b) (fuzzy AND).
func (s Fuzzy) Multiply(a, b float64) (float64, error) {
	if err := s.check("Multiply", a, b); err != nil {
		return math.NaN(), err
	}

	return math.Min(a, b), nil
}

// ResiduateLeft is the Gödel implication: 1 if a ≤ c, else c.
func (s Fuzzy) ResiduateLeft(a, c float64) (float64, error) {
	if err := s.check("ResiduateLeft", a, c); err != nil {
		return math.NaN(), err
	}
	if a <= c {
		return 1, nil
	}

	return c, nil
}

// ResiduateRight returns c/b = b\c; min is commutative.
func (s Fuzzy) ResiduateRight(c, b float64) (float64, error) {
	return s.ResiduateLeft(b, c)
}

// Equal implements Semiring.
func (Fuzzy) Equal(a, b float64) bool { return a == b }

// Validate accepts exactly the closed unit interval.
func (s Fuzzy) Validate(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return domainErrorf(s.Name(), "Validate", v)
	}

	return nil
}

func (s Fuzzy) check(op string, a, b float64) error {
	if err := s.Validate(a); err != nil {
		return domainErrorf(s.Name(), op, a)
	}
	if err := s.Validate(b); err != nil {
		return domainErrorf(s.Name(), op, b)
	}

	return nil
}
