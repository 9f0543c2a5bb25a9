package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfca/bitvec"
	"github.com/katalvlaran/kfca/builder"
	"github.com/katalvlaran/kfca/galois"
	"github.com/katalvlaran/kfca/kcontext"
	"github.com/katalvlaran/kfca/lattice"
	"github.com/katalvlaran/kfca/semiring"
)

const vehicleAttributeCount = 11

func vehicleConn(t *testing.T, pivot float64) (*kcontext.Context[float64], *galois.Connection[float64]) {
	t.Helper()
	ctx, err := builder.Vehicles(semiring.MaxPlus{})
	require.NoError(t, err)
	conn, err := galois.New(ctx, pivot)
	require.NoError(t, err)
	return ctx, conn
}

func vehicles(t *testing.T, pivot float64, opts ...lattice.Option) *lattice.Lattice[float64] {
	t.Helper()
	ctx, conn := vehicleConn(t, pivot)
	l, err := lattice.Build(ctx, conn, opts...)
	require.NoError(t, err)
	return l
}

// TestVehicleCounts pins concept and edge counts per pivot and method.
// The complete lattice is larger than the object-generated one; the latter
// reproduces the historical 8/11/10 figures.
func TestVehicleCounts(t *testing.T) {
	cases := []struct {
		pivot               float64
		canonical, edges    int
		objects, attributes int
	}{
		{pivot: 0.5, canonical: 15, edges: 25, objects: 8, attributes: 10},
		{pivot: 0.75, canonical: 22, edges: 37, objects: 11, attributes: 12},
		{pivot: 1.0, canonical: 14, edges: 23, objects: 10, attributes: 10},
	}
	for _, tc := range cases {
		full := vehicles(t, tc.pivot)
		assert.Equal(t, tc.canonical, full.ConceptCount(), "canonical φ=%v", tc.pivot)
		assert.Len(t, full.Edges(), tc.edges, "edges φ=%v", tc.pivot)

		objs := vehicles(t, tc.pivot, lattice.WithMethod(lattice.MethodObjects))
		assert.Equal(t, tc.objects, objs.ConceptCount(), "objects φ=%v", tc.pivot)
		assert.Equal(t, lattice.MethodObjects, objs.Method())

		attrs := vehicles(t, tc.pivot, lattice.WithMethod(lattice.MethodAttributes))
		assert.Equal(t, tc.attributes, attrs.ConceptCount(), "attributes φ=%v", tc.pivot)

		// partial methods only ever materialize concepts of the full lattice
		for _, part := range []*lattice.Lattice[float64]{objs, attrs} {
			for _, c := range part.Concepts() {
				_, ok := full.Find(c.Extent())
				assert.True(t, ok, "φ=%v: %s missing from canonical", tc.pivot, c)
			}
		}
	}
}

func TestVehicleObjectMethodExtents(t *testing.T) {
	l := vehicles(t, 0.5, lattice.WithMethod(lattice.MethodObjects))
	assert.Equal(t, []string{
		"{0,1,2,3,4,5,6,7,8,9}", "{0,4,5,6}", "{2,7}", "{8,9}", "{1}", "{2}", "{3}", "{}",
	}, extents(l))

	names, err := l.ObjectsOf(mustAt(t, l, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"Helicopter", "Airplane"}, names)

	// Scooter ∨ Motorbike is a concept of the full lattice only.
	_, err = l.Join(mustAt(t, l, 5), mustAt(t, l, 6))
	require.ErrorIs(t, err, lattice.ErrNotFound)
	m, err := l.Meet(mustAt(t, l, 2), mustAt(t, l, 3))
	require.NoError(t, err)
	assert.Equal(t, l.Bottom(), m)
}

func TestVehicleTopBottom(t *testing.T) {
	l := vehicles(t, 0.75)
	attrs, err := l.AttributesOf(l.Top())
	require.NoError(t, err)
	assert.Equal(t, []string{"is_transport"}, attrs)

	objs, err := l.ObjectsOf(l.Bottom())
	require.NoError(t, err)
	assert.Empty(t, objs)
	assert.Equal(t, vehicleAttributeCount, l.Bottom().Intent().Count())
}

// TestEveryConceptIsClosedAndComplete checks validity against the Galois
// connection and completeness against brute force over attribute subsets.
func TestEveryConceptIsClosedAndComplete(t *testing.T) {
	for _, pivot := range []float64{0.5, 0.75, 1.0} {
		ctx, conn := vehicleConn(t, pivot)
		l, err := lattice.Build(ctx, conn)
		require.NoError(t, err)

		for _, c := range l.Concepts() {
			ok, err := conn.IsConcept(c.Extent(), c.Intent())
			require.NoError(t, err)
			assert.True(t, ok, "φ=%v: %s", pivot, c)
		}

		closed := map[string]bool{}
		p := vehicleAttributeCount
		for mask := 0; mask < 1<<p; mask++ {
			flags := make([]bool, p)
			for j := range flags {
				flags[j] = mask&(1<<j) != 0
			}
			ext, err := conn.LeftPolar(bitvec.FromBools(flags))
			require.NoError(t, err)
			closed[ext.String()] = true
		}
		assert.Len(t, closed, l.ConceptCount(), "φ=%v", pivot)
		for _, e := range extents(l) {
			assert.True(t, closed[e], "φ=%v: %s", pivot, e)
		}
	}
}

// TestOrderAndCovering checks that inclusion is a strict partial order and
// that Edges is exactly its transitive reduction.
func TestOrderAndCovering(t *testing.T) {
	for _, opts := range [][]lattice.Option{nil, {lattice.WithMethod(lattice.MethodObjects)}} {
		l := vehicles(t, 0.75, opts...)
		cs := l.Concepts()
		k := len(cs)
		lt := func(i, j int) bool { return cs[i].Extent().ProperSubsetOf(cs[j].Extent()) }

		cover := map[lattice.Edge]bool{}
		for i := 0; i < k; i++ {
			assert.False(t, lt(i, i))
			for j := 0; j < k; j++ {
				if lt(i, j) {
					assert.False(t, lt(j, i), "antisymmetry %d %d", i, j)
					assert.Less(t, j, i, "order must place larger extents first")
				}
				for m := 0; m < k; m++ {
					if lt(i, j) && lt(j, m) {
						assert.True(t, lt(i, m), "transitivity %d %d %d", i, j, m)
					}
				}
				if !lt(i, j) {
					continue
				}
				between := false
				for m := 0; m < k; m++ {
					if lt(i, m) && lt(m, j) {
						between = true
						break
					}
				}
				if !between {
					cover[lattice.Edge{Lower: i, Upper: j}] = true
				}
			}
		}
		edges := l.Edges()
		assert.Len(t, edges, len(cover))
		for _, e := range edges {
			assert.True(t, cover[e], "edge %v is not a cover", e)
		}

		top, bottom := 0, 0
		for _, c := range cs {
			ups, err := l.UpperNeighbors(c)
			require.NoError(t, err)
			downs, err := l.LowerNeighbors(c)
			require.NoError(t, err)
			if len(ups) == 0 {
				top++
			}
			if len(downs) == 0 {
				bottom++
			}
		}
		assert.Equal(t, 1, top)
		assert.Equal(t, 1, bottom)
	}
}

// TestMonotoneGranularity checks that a stricter pivot only yields extents
// contained in some extent of a looser pivot.
func TestMonotoneGranularity(t *testing.T) {
	pivots := []float64{0.25, 0.5, 0.75, 1.0}
	lats := make([]*lattice.Lattice[float64], len(pivots))
	for i, p := range pivots {
		lats[i] = vehicles(t, p)
	}
	for i := 1; i < len(pivots); i++ {
		loose, strict := lats[i-1], lats[i]
		for _, c := range strict.Concepts() {
			covered := false
			for _, d := range loose.Concepts() {
				if c.Extent().SubsetOf(d.Extent()) {
					covered = true
					break
				}
			}
			assert.True(t, covered, "φ=%v extent %s", pivots[i], c.Extent())
		}
		// the top extent can only shrink
		assert.True(t, strict.Top().Extent().SubsetOf(loose.Top().Extent()))
	}
}

func TestMeetJoinAreBounds(t *testing.T) {
	l := vehicles(t, 1.0)
	cs := l.Concepts()
	for _, a := range cs {
		for _, b := range cs {
			m, err := l.Meet(a, b)
			require.NoError(t, err)
			j, err := l.Join(a, b)
			require.NoError(t, err)
			for _, c := range []lattice.Concept{a, b} {
				le, _ := l.Leq(m, c)
				assert.True(t, le, "meet(%d,%d) ≤ %d", a.Index(), b.Index(), c.Index())
				ge, _ := l.Leq(c, j)
				assert.True(t, ge, "%d ≤ join(%d,%d)", c.Index(), a.Index(), b.Index())
			}
		}
	}
}
