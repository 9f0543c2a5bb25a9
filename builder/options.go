// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// DefaultDensity is the probability of a true cell in RandomBoolean.
const DefaultDensity = 0.5

// Option customizes a constructor.
type Option func(*config)

type config struct {
	objectID    IDFn
	attributeID IDFn
	rng         *rand.Rand
	value       ValueFn
	density     float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		objectID:    SymbolNumberIDFn("g"),
		attributeID: SymbolNumberIDFn("m"),
		value:       LevelsValueFn(DefaultLevels...),
		density:     DefaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithObjectIDs sets the object label scheme. Panics on nil.
func WithObjectIDs(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithObjectIDs(nil)")
	}
	return func(c *config) { c.objectID = fn }
}

// WithAttributeIDs sets the attribute label scheme. Panics on nil.
func WithAttributeIDs(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithAttributeIDs(nil)")
	}
	return func(c *config) { c.attributeID = fn }
}

// WithSeed uses a fresh generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithValueFn sets the distribution used by RandomValued. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *config) { c.value = fn }
}

// WithDensity sets the probability of a true cell. Panics outside [0, 1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDensity(%g) outside [0,1]", p))
	}
	return func(c *config) { c.density = p }
}
