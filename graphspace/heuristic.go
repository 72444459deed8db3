// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// heuristic.go - admissible A* estimate from hop distances.
//
// h(u) = minEdgeCost · hops(u → goal), with hops found by one reverse BFS
// from the goal. Every path to the goal has at least hops(u) edges of cost at
// least minEdgeCost, so h never overestimates. Nodes that cannot reach the
// goal get 0.

package graphspace

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvsearch/search"
)

// HopHeuristic returns an admissible heuristic for problems whose goal is
// the given node.
func (g *Graph) HopHeuristic(goal int) (search.Heuristic[State], error) {
	if err := g.checkNode(goal); err != nil {
		return nil, fmt.Errorf("HopHeuristic(%d): %w", goal, err)
	}

	minCost := 0
	for _, c := range g.costs {
		if c > 0 && (minCost == 0 || c < minCost) {
			minCost = c
		}
	}

	// Predecessor rows: reverse[v] holds every u with u→v.
	reverse := make([]*roaring.Bitmap, g.n)
	for v := range reverse {
		reverse[v] = roaring.New()
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.Successors(u) {
			reverse[v].Add(uint32(u))
		}
	}

	hops := make([]int, g.n)
	for i := range hops {
		hops[i] = -1
	}
	hops[goal] = 0
	queue := []int{goal}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		it := reverse[v].Iterator()
		for it.HasNext() {
			u := int(it.Next())
			if hops[u] < 0 {
				hops[u] = hops[v] + 1
				queue = append(queue, u)
			}
		}
	}

	return func(s State) int {
		if hops[s.node] < 0 {
			return 0
		}

		return hops[s.node] * minCost
	}, nil
}
