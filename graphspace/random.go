// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// random.go - random problem graphs.
//
// Model:
//   • Shuffle the node order. Link order[0]→order[1], then link every later
//     order[i] from a uniformly chosen earlier node. Every node is therefore
//     reachable from order[0], which is not necessarily node 0.
//   • target = round(density · n·(n−1)). If target exceeds the n−1 spanning
//     edges, add each remaining non-loop pair independently with probability
//     (target − n + 1) / (n·(n−1)).
//   • Costs: 1 by default, uniform in [minCost, maxCost] with WithRandomCosts.
//
// Determinism:
//   • Fixed seed + options ⇒ identical graph (trial order: i asc, j asc).

package graphspace

import (
	"fmt"
	"math"
)

// Random samples a connected-from-one-root directed graph with n nodes and
// approximately the given edge density. Low densities are raised to the n−1
// spanning edges.
func Random(n int, density float64, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewNodes)
	}
	if density < 0 || density > 1 || math.IsNaN(density) {
		return nil, fmt.Errorf("Random: density=%g not in [0,1]: %w", density, ErrInvalidDensity)
	}
	cfg := newRandomConfig(opts...)
	if cfg.rng == nil && n > 1 {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return g, nil
	}

	order := cfg.rng.Perm(n)
	if err = g.AddEdge(order[0], order[1], cfg.cost()); err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	for i := 2; i < n; i++ {
		from := order[cfg.rng.Intn(i)]
		if err = g.AddEdge(from, order[i], cfg.cost()); err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
	}

	complete := n * (n - 1)
	target := int(math.Round(density * float64(complete)))
	if target <= n-1 {
		return g, nil
	}
	p := float64(target-n+1) / float64(complete)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || g.IsEdge(i, j) {
				continue
			}
			if cfg.rng.Float64() < p {
				if err = g.AddEdge(i, j, cfg.cost()); err != nil {
					return nil, fmt.Errorf("Random: %w", err)
				}
			}
		}
	}

	return g, nil
}
