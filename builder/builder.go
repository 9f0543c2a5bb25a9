// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/kfca/kcontext"
	"github.com/katalvlaran/kfca/semiring"
)

const (
	methodRandomBoolean = "RandomBoolean"
	methodRandomValued  = "RandomValued"
	methodNominal       = "Nominal"
	methodOrdinal       = "Ordinal"
)

// labels applies fn to [0, k).
func labels(fn IDFn, k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

func checkSize(method string, n, p int) error {
	if n < 0 || p < 0 {
		return builderErrorf(method, fmt.Errorf("%w: %d×%d", ErrInvalidSize, n, p))
	}
	return nil
}

// RandomBoolean returns an n×p Boolean context whose cells are true with
// probability WithDensity (default 0.5). Rows are drawn in row-major order.
func RandomBoolean(n, p int, opts ...Option) (*kcontext.Context[bool], error) {
	if err := checkSize(methodRandomBoolean, n, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, p)
		for j := range rows[i] {
			rows[i][j] = cfg.rng.Float64() < cfg.density
		}
	}

	return kcontext.New(labels(cfg.objectID, n), labels(cfg.attributeID, p), rows,
		semiring.Semiring[bool](semiring.Boolean{}))
}

// RandomValued returns an n×p context over s with values drawn from the
// WithValueFn distribution (default: uniform over DefaultLevels).
// Values the semiring rejects surface as semiring.ErrDomain when a Galois
// connection is built, not here.
func RandomValued(n, p int, s semiring.Semiring[float64], opts ...Option) (*kcontext.Context[float64], error) {
	if err := checkSize(methodRandomValued, n, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, p)
		for j := range rows[i] {
			rows[i][j] = cfg.value(cfg.rng)
		}
	}

	return kcontext.New(labels(cfg.objectID, n), labels(cfg.attributeID, p), rows, s)
}

// Nominal returns the nominal scale on values: object v has attribute "=w"
// iff v == w. For k ≥ 2 values its lattice has k+2 concepts.
func Nominal(values []string) (*kcontext.Context[bool], error) {
	k := len(values)
	if k == 0 {
		return nil, builderErrorf(methodNominal, fmt.Errorf("%w: no values", ErrInvalidSize))
	}
	attrs := make([]string, k)
	rows := make([][]bool, k)
	for i, v := range values {
		attrs[i] = "=" + v
		rows[i] = make([]bool, k)
		rows[i][i] = true
	}

	return kcontext.New(values, attrs, rows, semiring.Semiring[bool](semiring.Boolean{}))
}

// Ordinal returns the ordinal scale on 1..k: object i has attribute "≤j"
// iff i ≤ j. Its lattice is a chain of k concepts.
func Ordinal(k int) (*kcontext.Context[bool], error) {
	if k < 1 {
		return nil, builderErrorf(methodOrdinal, fmt.Errorf("%w: k=%d", ErrInvalidSize, k))
	}
	objs := labels(func(i int) string { return fmt.Sprint(i + 1) }, k)
	attrs := labels(func(j int) string { return fmt.Sprintf("≤%d", j+1) }, k)
	rows := make([][]bool, k)
	for i := range rows {
		rows[i] = make([]bool, k)
		for j := i; j < k; j++ {
			rows[i][j] = true
		}
	}

	return kcontext.New(objs, attrs, rows, semiring.Semiring[bool](semiring.Boolean{}))
}
