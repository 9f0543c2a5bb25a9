// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Generalized (semiring) linear algebra: MulVec, VecMul, Mul.
//   - Element-wise conversion between value domains: Map.
//
// Determinism & Performance:
//   - Fixed loop orders (i→k→j); every ⊕/⊗ goes through the semiring.
//   - First semiring error aborts the kernel and is returned wrapped.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/kfca/semiring"
)

const (
	opMulVec = "MulVec"
	opVecMul = "VecMul"
	opMul    = "Mul"
	opMap    = "Map"
)

// MulVec returns u with u[i] = ⊕_j m[i][j] ⊗ v[j].
// Implementation:
//   - Stage 1: validate m != nil and len(v) == m.Cols().
//   - Stage 2: for each row, fold the products with the semiring.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, or a wrapped semiring.ErrDomain.
//
// Complexity:
//   - Time O(r*c) semiring operations, Space O(r).
func MulVec[T any](s semiring.Semiring[T], m *Dense[T], v []T) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if len(v) != m.c {
		return nil, fmt.Errorf("matrix.%s: len(v)=%d, cols=%d: %w", opMulVec, len(v), m.c, ErrDimensionMismatch)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		u, err := semiring.Dot(s, m.data[i*m.c:(i+1)*m.c], v)
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		out[i] = u
	}

	return out, nil
}

// VecMul returns u with u[j] = ⊕_i v[i] ⊗ m[i][j] (row vector times matrix).
// The product order is kept so non-commutative semirings stay correct.
func VecMul[T any](s semiring.Semiring[T], v []T, m *Dense[T]) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opVecMul, ErrNilMatrix)
	}
	if len(v) != m.r {
		return nil, fmt.Errorf("matrix.%s: len(v)=%d, rows=%d: %w", opVecMul, len(v), m.r, ErrDimensionMismatch)
	}
	out := make([]T, m.c)
	for j := range out {
		out[j] = s.Zero()
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			p, err := s.Multiply(v[i], m.data[base+j])
			if err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			if out[j], err = s.Add(out[j], p); err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
		}
	}

	return out, nil
}

// Mul returns the semiring product (a ⊗ b)[i][j] = ⊕_k a[i][k] ⊗ b[k][j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows), semiring errors.
// Complexity: O(r*k*c).
func Mul[T any](s semiring.Semiring[T], a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("matrix.%s: %dx%d * %dx%d: %w", opMul, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c, s.Zero())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			for j := 0; j < b.c; j++ {
				p, err := s.Multiply(aik, b.data[k*b.c+j])
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				cell := &out.data[i*out.c+j]
				if *cell, err = s.Add(*cell, p); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
			}
		}
	}

	return out, nil
}

// Map applies f to every entry and returns the converted matrix of the same
// shape. The first error from f aborts and is returned with coordinates.
func Map[T, U any](m *Dense[T], f func(v T) (U, error)) (*Dense[U], error) {
	if m == nil {
		return nil, matrixErrorf(opMap, ErrNilMatrix)
	}
	out := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for k, v := range m.data {
		u, err := f(v)
		if err != nil {
			return nil, denseErrorf(opMap, k/max(m.c, 1), k%max(m.c, 1), err)
		}
		out.data[k] = u
	}

	return out, nil
}
