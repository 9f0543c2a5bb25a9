package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfca/bitvec"
)

func mustVec(t *testing.T, width int, idx ...int) bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromIndices(width, idx...)
	require.NoError(t, err)
	return v
}

func TestConstructors(t *testing.T) {
	e := bitvec.New(5)
	assert.Equal(t, 5, e.Width())
	assert.True(t, e.Empty())
	assert.Equal(t, "{}", e.String())

	f := bitvec.Full(5)
	assert.Equal(t, 5, f.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.Indices())

	v := mustVec(t, 70, 0, 3, 69)
	assert.Equal(t, []int{0, 3, 69}, v.Indices())
	assert.True(t, v.Test(69))
	assert.False(t, v.Test(70))
	assert.False(t, v.Test(-1))

	_, err := bitvec.FromIndices(3, 3)
	require.ErrorIs(t, err, bitvec.ErrOutOfRange)

	b := bitvec.FromBools([]bool{true, false, true})
	assert.Equal(t, []bool{true, false, true}, b.Bools())

	var zero bitvec.Vector
	assert.Equal(t, 0, zero.Width())
	assert.Equal(t, 0, zero.Count())
	assert.True(t, zero.Equal(bitvec.New(0)))
}

func TestImmutability(t *testing.T) {
	v := mustVec(t, 4, 1)
	w, err := v.With(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v.Indices(), "With must not touch the receiver")
	assert.Equal(t, []int{1, 2}, w.Indices())

	a := mustVec(t, 4, 0, 1)
	b := mustVec(t, 4, 1, 2)
	i, err := a.Intersect(b)
	require.NoError(t, err)
	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, i.Indices())
	assert.Equal(t, []int{0, 1, 2}, u.Indices())
	assert.Equal(t, []int{0, 1}, a.Indices())
	assert.Equal(t, []int{1, 2}, b.Indices())

	_, err = a.Union(bitvec.New(5))
	require.ErrorIs(t, err, bitvec.ErrWidthMismatch)
	_, err = a.Intersect(bitvec.New(3))
	require.ErrorIs(t, err, bitvec.ErrWidthMismatch)
}

func TestOrderAndIdentity(t *testing.T) {
	a := mustVec(t, 5, 0, 1)
	b := mustVec(t, 5, 0, 1, 3)
	c := mustVec(t, 5, 0, 1)

	assert.True(t, a.SubsetOf(b))
	assert.True(t, a.ProperSubsetOf(b))
	assert.True(t, a.SubsetOf(c))
	assert.False(t, a.ProperSubsetOf(c))
	assert.False(t, b.SubsetOf(a))
	assert.False(t, a.SubsetOf(bitvec.Full(6)), "different widths are incomparable")

	assert.True(t, a.Equal(c))
	assert.Equal(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(mustVec(t, 6, 0, 1)))

	h := bitvec.Hasher{}
	assert.True(t, h.Equal(a, c))
	assert.Equal(t, h.Hash(a), h.Hash(c))
}

func TestCompare(t *testing.T) {
	big := mustVec(t, 5, 0, 2, 4)
	x := mustVec(t, 5, 0, 1)
	y := mustVec(t, 5, 0, 2)

	assert.Equal(t, -1, big.Compare(x), "larger cardinality first")
	assert.Equal(t, 1, x.Compare(big))
	assert.Equal(t, -1, x.Compare(y), "lexical tie-break")
	assert.Equal(t, 1, y.Compare(x))
	assert.Equal(t, 0, x.Compare(mustVec(t, 5, 0, 1)))
}
