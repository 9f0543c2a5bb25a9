// Package matrix_test contains unit tests for Dense and the semiring kernels.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfca/matrix"
	"github.com/katalvlaran/kfca/semiring"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows[T any](t *testing.T, rows [][]T, cols int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, cols)
	require.NoError(t, err)
	return m
}

// TestNewDenseShapes ensures negative shapes are rejected and empty ones allowed.
func TestNewDenseShapes(t *testing.T) {
	_, err := matrix.NewDense(-1, 2, 0.0)
	require.ErrorIs(t, err, matrix.ErrBadShape) // negative rows

	m, err := matrix.NewDense(0, 3, false) // 0×3 is legal
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())

	m2, err := matrix.NewDense(2, 2, math.Inf(-1)) // filled with MaxPlus zero
	require.NoError(t, err)
	v, err := m2.At(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, -1))
}

// TestFromRowsRagged ensures ragged input is a dimension mismatch.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]int{{1, 2}}, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAccessors covers At/Set/Row/Col bounds and copy semantics.
func TestAccessors(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m := mustRows(t, src, 3)
	src[0][0] = 99 // input must not be aliased

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)
	row[0] = 0 // copy, not a view
	v, _ = m.At(1, 0)
	require.Equal(t, 4, v)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Dense[int]
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCloneTransposeString checks independence, transposition and formatting.
func TestCloneTransposeString(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, 2)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)

	tr := m.Transpose()
	require.Equal(t, 2, tr.Rows())
	require.Equal(t, 3, tr.Cols())
	v, _ = tr.At(1, 2)
	require.Equal(t, 6, v)

	require.Equal(t, "[1, 2]\n[3, 4]\n[5, 6]\n", m.String())
}

// TestMulVecBoolean multiplies by the Boolean identity matrix.
func TestMulVecBoolean(t *testing.T) {
	id := mustRows(t, [][]bool{{true, false}, {false, true}}, 2)
	u, err := matrix.MulVec[bool](semiring.Boolean{}, id, []bool{true, true})
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, u)

	u, err = matrix.MulVec[bool](semiring.Boolean{}, id, []bool{false, true})
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, u)

	_, err = matrix.MulVec[bool](semiring.Boolean{}, id, []bool{true})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulVecMaxPlus checks u[i] = max_j (R[i][j] + v[j]) with -∞ absorbing.
func TestMulVecMaxPlus(t *testing.T) {
	s := semiring.MaxPlus{}
	ninf := math.Inf(-1)
	r := mustRows(t, [][]float64{{1, ninf}, {0, 2}}, 2)

	u, err := matrix.MulVec[float64](s, r, []float64{3, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3}, u)

	w, err := matrix.VecMul[float64](s, []float64{0, 1}, r)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, w)

	_, err = matrix.MulVec[float64](s, r, []float64{math.NaN(), 0})
	require.ErrorIs(t, err, semiring.ErrDomain)
}

// TestMulMinPlus checks a shortest-path style product in the tropical semiring.
func TestMulMinPlus(t *testing.T) {
	s := semiring.MinPlus{}
	inf := math.Inf(1)
	d := mustRows(t, [][]float64{{0, 1, inf}, {inf, 0, 2}, {inf, inf, 0}}, 3)

	d2, err := matrix.Mul[float64](s, d, d)
	require.NoError(t, err)
	v, _ := d2.At(0, 2)
	require.Equal(t, 3.0, v) // 0→1→2

	_, err = matrix.Mul[float64](s, d, mustRows(t, [][]float64{{1}}, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMap converts values and reports the failing coordinate.
func TestMap(t *testing.T) {
	m := mustRows(t, [][]float64{{0.2, 0.7}, {1, 0}}, 2)
	b, err := matrix.Map(m, func(v float64) (bool, error) { return v >= 0.5, nil })
	require.NoError(t, err)
	require.Equal(t, "[false, true]\n[true, false]\n", b.String())

	boom := errors.New("boom")
	_, err = matrix.Map(m, func(v float64) (bool, error) {
		if v == 1 {
			return false, boom
		}
		return true, nil
	})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "(1,0)")
}
