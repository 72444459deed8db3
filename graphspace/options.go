// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// options.go - functional options for Random.
//
// Contract:
//   • Options mutate a randomConfig resolved once per Random call.
//   • Option constructors validate and panic on meaningless input.
//   • Determinism is explicit: seed with WithSeed or pass WithRand.

package graphspace

import (
	"fmt"
	"math/rand"
)

// Default cost bounds used by WithRandomCosts.
const (
	DefaultMinCost = 1
	DefaultMaxCost = 20
	unitCost       = 1
)

// randomConfig aggregates the knobs of Random.
type randomConfig struct {
	rng         *rand.Rand // nil means "no randomness available"
	randomCosts bool       // false ⇒ every edge costs unitCost
	minCost     int
	maxCost     int
}

// Option customizes Random.
type Option func(*randomConfig)

func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{
		rng:         nil,
		randomCosts: false,
		minCost:     DefaultMinCost,
		maxCost:     DefaultMaxCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphspace: WithRand(nil)")
	}

	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithRandomCosts draws each edge cost uniformly from the configured range
// instead of using unit costs.
func WithRandomCosts() Option {
	return func(c *randomConfig) {
		c.randomCosts = true
	}
}

// WithCostRange sets the inclusive range for random costs and enables them.
// Panics unless 1 ≤ lo ≤ hi.
func WithCostRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("graphspace: WithCostRange(%d, %d) needs 1 ≤ lo ≤ hi", lo, hi))
	}

	return func(c *randomConfig) {
		c.randomCosts = true
		c.minCost, c.maxCost = lo, hi
	}
}

// cost draws the weight of one new edge.
func (c randomConfig) cost() int {
	if !c.randomCosts {
		return unitCost
	}

	return c.minCost + c.rng.Intn(c.maxCost-c.minCost+1)
}
