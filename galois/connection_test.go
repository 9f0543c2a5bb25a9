package galois_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/kcontext"
	"github.com/katalvlaran/kfca/matrix"
	"github.com/katalvlaran/kfca/semiring"
)

var (
	boolRows = [][]bool{
		{true, true, true, true},
		{true, true, false, false},
		{false, true, true, true},
		{false, true, false, false},
		{false, true, true, false},
	}
	tropRows = [][]float64{
		{0.5, 1},
		{0, 0.75},
	}
)

func scenarioA(t *testing.T) *galois.Connection[bool] {
	t.Helper()
	ctx, err := kcontext.New([]string{"1", "2", "3", "4", "5"}, []string{"a", "b", "c", "d"},
		boolRows, semiring.Semiring[bool](semiring.Boolean{}))
	require.NoError(t, err)
	conn, err := galois.New(ctx, true)
	require.NoError(t, err)
	return conn
}

func tropical(t *testing.T, pivot float64) *galois.Connection[float64] {
	t.Helper()
	ctx, err := kcontext.New[float64]([]string{"x", "y"}, []string{"p", "q"}, tropRows, semiring.MaxPlus{})
	require.NoError(t, err)
	conn, err := galois.New(ctx, pivot)
	require.NoError(t, err)
	return conn
}

func vec(t *testing.T, width int, idx ...int) bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromIndices(width, idx...)
	require.NoError(t, err)
	return v
}

// subsets enumerates all 2^width vectors.
func subsets(width int) []bitvec.Vector {
	out := make([]bitvec.Vector, 0, 1<<width)
	for mask := 0; mask < 1<<width; mask++ {
		flags := make([]bool, width)
		for i := range flags {
			flags[i] = mask&(1<<i) != 0
		}
		out = append(out, bitvec.FromBools(flags))
	}
	return out
}

func TestPolarsScenarioA(t *testing.T) {
	conn := scenarioA(t)

	in, err := conn.RightPolar(bitvec.Full(5))
	require.NoError(t, err)
	assert.Equal(t, "{1}", in.String())

	ex, err := conn.LeftPolar(vec(t, 4, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "{0,2,4}", ex.String())

	// empty side maps to the full other side
	in, _ = conn.RightPolar(bitvec.New(5))
	assert.True(t, in.Equal(bitvec.Full(4)))
	ex, _ = conn.LeftPolar(bitvec.New(4))
	assert.True(t, ex.Equal(bitvec.Full(5)))

	ok, err := conn.IsConcept(vec(t, 5, 0, 2, 4), vec(t, 4, 1, 2))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = conn.IsConcept(vec(t, 5, 0, 2), vec(t, 4, 1, 2))
	assert.False(t, ok)

	_, err = conn.RightPolar(bitvec.Full(4))
	require.ErrorIs(t, err, galois.ErrLength)
	_, err = conn.LeftPolar(bitvec.Full(5))
	require.ErrorIs(t, err, galois.ErrLength)
	_, err = conn.IsConcept(bitvec.Full(5), bitvec.Full(5))
	require.ErrorIs(t, err, galois.ErrLength)
}

// TestPolarMatchesBooleanProduct cross-checks LeftPolar against the Boolean
// matrix product of the complemented relation: g is excluded iff it misses
// some attribute of the intent.
func TestPolarMatchesBooleanProduct(t *testing.T) {
	conn := scenarioA(t)
	b := semiring.Boolean{}
	missing, err := matrix.FromRows(boolRows, 4)
	require.NoError(t, err)
	missing, err = matrix.Map(missing, func(v bool) (bool, error) { return b.Negate(v), nil })
	require.NoError(t, err)

	for _, y := range subsets(4) {
		miss, err := matrix.MulVec[bool](b, missing, y.Bools())
		require.NoError(t, err)
		want := make([]bool, len(miss))
		for g, m := range miss {
			want[g] = !m
		}
		got, err := conn.LeftPolar(y)
		require.NoError(t, err)
		assert.Equal(t, want, got.Bools(), "intent %s", y)
	}
}

func TestClosureLaws(t *testing.T) {
	conn := scenarioA(t)

	check := func(all []bitvec.Vector, closure func(bitvec.Vector) (bitvec.Vector, error)) {
		for _, x := range all {
			cx, err := closure(x)
			require.NoError(t, err)
			assert.True(t, x.SubsetOf(cx), "extensive at %s", x)
			ccx, err := closure(cx)
			require.NoError(t, err)
			assert.True(t, ccx.Equal(cx), "idempotent at %s", x)
			for _, y := range all {
				if !x.SubsetOf(y) {
					continue
				}
				cy, err := closure(y)
				require.NoError(t, err)
				assert.True(t, cx.SubsetOf(cy), "monotone at %s ⊆ %s", x, y)
			}
		}
	}
	check(subsets(5), conn.ExtentClosure)
	check(subsets(4), conn.IntentClosure)

	ok, err := conn.IsClosedExtent(vec(t, 5, 0, 2))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = conn.IsClosedExtent(vec(t, 5, 2))
	assert.False(t, ok)
	ok, _ = conn.IsClosedIntent(vec(t, 4, 1))
	assert.True(t, ok)
	ok, _ = conn.IsClosedIntent(vec(t, 4, 0))
	assert.False(t, ok)
}

func TestTropicalThreshold(t *testing.T) {
	conn := tropical(t, 0.5)
	assert.True(t, conn.Qualifies(0, 0))
	assert.False(t, conn.Qualifies(1, 0))
	assert.True(t, conn.Qualifies(1, 1))
	assert.False(t, conn.Qualifies(2, 0))
	assert.Equal(t, 0.5, conn.Pivot())

	cl, err := conn.ExtentClosure(vec(t, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, "{0,1}", cl.String())

	strict := tropical(t, 0.8)
	in, _ := strict.RightPolar(bitvec.Full(2))
	assert.True(t, in.Empty())

	// -∞ is the bottom: every incidence qualifies
	loose := tropical(t, math.Inf(-1))
	in, _ = loose.RightPolar(bitvec.Full(2))
	assert.True(t, in.Equal(bitvec.Full(2)))
}

func TestMinPlusThresholdIsReversed(t *testing.T) {
	ctx, err := kcontext.New[float64]([]string{"x", "y"}, []string{"p", "q"}, tropRows, semiring.MinPlus{})
	require.NoError(t, err)
	conn, err := galois.New(ctx, 0.5)
	require.NoError(t, err)
	// φ ≤ v under MinPlus means v ≤ φ numerically
	assert.True(t, conn.Qualifies(0, 0))
	assert.False(t, conn.Qualifies(0, 1))
	assert.True(t, conn.Qualifies(1, 0))
	assert.False(t, conn.Qualifies(1, 1))
}

func TestDomainErrors(t *testing.T) {
	ctx, err := kcontext.New[float64]([]string{"x", "y"}, []string{"p", "q"}, tropRows, semiring.MaxPlus{})
	require.NoError(t, err)
	_, err = galois.New(ctx, math.NaN())
	require.ErrorIs(t, err, semiring.ErrDomain)

	bad, err := kcontext.New[float64]([]string{"x"}, []string{"p"}, [][]float64{{math.NaN()}}, semiring.MaxPlus{})
	require.NoError(t, err)
	_, err = galois.New(bad, 0)
	require.ErrorIs(t, err, semiring.ErrDomain)

	fz, err := kcontext.New[float64]([]string{"x"}, []string{"p", "q"}, [][]float64{{0.5, 1.5}}, semiring.Fuzzy{})
	require.NoError(t, err)
	_, err = galois.New(fz, 0.5)
	require.ErrorIs(t, err, semiring.ErrDomain)
	assert.Contains(t, err.Error(), "(0,1)")

	_, err = galois.New[bool](nil, true)
	require.ErrorIs(t, err, galois.ErrNilContext)
}

// flags is the powerset semiring over 2-bit masks: ⊕ = OR, ⊗ = AND.
// Its natural order is inclusion, which is only partial.
type flags struct{}

func (flags) Name() string { return "Flags" }

func (flags) Zero() uint8 { return 0 }

func (flags) One() uint8 { return 3 }

func (flags) Add(a, b uint8) (uint8, error) { return a | b, nil }

func (flags) Multiply(a, b uint8) (uint8, error) { return a & b, nil }

func (flags) ResiduateLeft(a, c uint8) (uint8, error) { return (^a | c) & 3, nil }

func (f flags) ResiduateRight(c, b uint8) (uint8, error) { return f.ResiduateLeft(b, c) }

func (flags) Equal(a, b uint8) bool { return a == b }

func (flags) Validate(v uint8) error {
	if v > 3 {
		return semiring.ErrDomain
	}
	return nil
}

func TestIncomparablePivot(t *testing.T) {
	s := semiring.Semiring[uint8](flags{})
	ok, err := kcontext.New([]string{"g"}, []string{"m", "n"}, [][]uint8{{3, 0}}, s)
	require.NoError(t, err)
	conn, err := galois.New(ok, 1)
	require.NoError(t, err)
	assert.True(t, conn.Qualifies(0, 0))
	assert.False(t, conn.Qualifies(0, 1))

	clash, err := kcontext.New([]string{"g"}, []string{"m"}, [][]uint8{{2}}, s)
	require.NoError(t, err)
	_, err = galois.New(clash, 1)
	require.ErrorIs(t, err, semiring.ErrDomain)
	assert.Contains(t, err.Error(), "incomparable")
}

func TestNewAtOne(t *testing.T) {
	ctx, err := kcontext.New[float64]([]string{"x", "y"}, []string{"p", "q"}, tropRows, semiring.MaxPlus{})
	require.NoError(t, err)
	conn, err := galois.NewAtOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, conn.Pivot())
	// every tropRows value is ≥ 0
	in, _ := conn.RightPolar(bitvec.Full(2))
	assert.True(t, in.Equal(bitvec.Full(2)))
	assert.Same(t, ctx, conn.Context())
}
