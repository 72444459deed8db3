// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// Package graphspace builds directed weighted graphs and exposes them as
// search.State spaces.
//
// What:
//   - New(n) + AddEdge(u, v, cost): explicit fixtures.
//   - Random(n, density, opts...): random problem graphs in which every node
//     is reachable from one randomly chosen root.
//   - Graph.State / Graph.Problem: the state type and a ready-made problem
//     whose goal test is node == goal.
//   - Graph.HopHeuristic(goal): an admissible A* estimate.
//
// Options (Random):
//   - WithSeed(seed) / WithRand(r): RNG; required for n > 1.
//   - WithRandomCosts(): costs uniform in [1,20] instead of 1.
//   - WithCostRange(lo, hi): custom inclusive cost range.
//
// Errors:
//   - ErrTooFewNodes, ErrInvalidDensity, ErrNeedRandSource (builders).
//   - ErrNodeOutOfRange, ErrSelfLoop, ErrBadCost (AddEdge, State).
//   - ErrNoEdge (Cost; wrapped in the panic of State.TransitionCost).
//
// Example:
//
//	g, _ := graphspace.Random(100, 0.1, graphspace.WithSeed(7), graphspace.WithRandomCosts())
//	p, _ := g.Problem(0, 99)
//	res, _ := p.UniformCost()
package graphspace
