// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
	"slices"
)

// ValueFn draws one incidence value.
type ValueFn func(rng *rand.Rand) float64

// DefaultLevels is the five-step grid of vote-normalized contexts.
var DefaultLevels = []float64{0, 0.25, 0.5, 0.75, 1}

// ConstantValueFn always returns v.
func ConstantValueFn(v float64) ValueFn {
	return func(_ *rand.Rand) float64 { return v }
}

// UniformValueFn draws from U[min, max). Panics unless min ≤ max.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// LevelsValueFn picks one of levels uniformly. Panics on an empty grid.
func LevelsValueFn(levels ...float64) ValueFn {
	if len(levels) == 0 {
		panic("LevelsValueFn: no levels")
	}
	grid := slices.Clone(levels)
	return func(rng *rand.Rand) float64 {
		return grid[rng.Intn(len(grid))]
	}
}
