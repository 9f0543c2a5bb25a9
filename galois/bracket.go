// SPDX-License-Identifier: MIT

package galois

import (
	"fmt"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/matrix"
	"github.com/katalvlaran/kfca/semiring"
)

// Bracket returns ⟨x|y⟩_R = ⊕_{g,m} x[g] ⊗ R(g,m) ⊗ y[m], the degree to which
// the K-valued object vector x relates to the K-valued attribute vector y.
// Implementation:
//   - Stage 1: t = xᵀ ⊗ R (row vector, length p) via matrix.VecMul.
//   - Stage 2: t ⊗ y via semiring.Dot.
//
// Errors: ErrLength on width mismatch; semiring.ErrDomain from the kernels.
func (c *Connection[T]) Bracket(x, y []T) (T, error) {
	s := c.ctx.Semiring()
	if len(x) != c.n {
		return s.Zero(), lengthErrorf("Bracket", len(x), c.n)
	}
	if len(y) != c.p {
		return s.Zero(), lengthErrorf("Bracket", len(y), c.p)
	}
	t, err := matrix.VecMul(s, x, c.ctx.Matrix())
	if err != nil {
		return s.Zero(), fmt.Errorf("galois.Bracket: %w", err)
	}
	v, err := semiring.Dot(s, t, y)
	if err != nil {
		return s.Zero(), fmt.Errorf("galois.Bracket: %w", err)
	}

	return v, nil
}

// Lift maps an indicator vector into K: set positions become One, the rest Zero.
func Lift[T any](s semiring.Semiring[T], v bitvec.Vector) []T {
	out := make([]T, v.Width())
	for i := range out {
		if v.Test(i) {
			out[i] = s.One()
		} else {
			out[i] = s.Zero()
		}
	}

	return out
}
