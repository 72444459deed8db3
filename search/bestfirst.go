package search

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsearch/pq"
)

// UniformCost runs uniform-cost search.
//
// The frontier is an indexed priority queue ordered by cumulative cost g,
// and a best-g map remembers every generated state. A newly generated path
// is queued only if its state is new or the path is strictly cheaper than the
// recorded one; in the latter case the queued entry is promoted in place.
// The goal test is applied on dequeue, since a cheaper path to the goal may
// still be waiting in the frontier. Optimal for nonnegative costs.
//
// Complexity: O((V + E) log V).
func (p *Problem[S]) UniformCost(opts ...Option) (Result[S], error) {
	r := p.newRun(AlgorithmUniformCost, resolveOptions(opts))

	return r.bestFirst(func(_ S, g int) (int, error) { return g, nil })
}

// AStar runs A* search with priority f = g + h(state), keeping a best-f map
// in place of uniform-cost search's best-g map.
//
// h must be admissible for the result to be optimal and consistent for each
// state to be expanded at most once; neither is checked. Returns
// ErrNilHeuristic for a nil h and ErrNegativeHeuristic for a negative estimate.
func (p *Problem[S]) AStar(h Heuristic[S], opts ...Option) (Result[S], error) {
	r := p.newRun(AlgorithmAStar, resolveOptions(opts))
	if h == nil {
		return r.fail(ErrNilHeuristic)
	}

	return r.bestFirst(func(s S, g int) (int, error) {
		est := h(s)
		if est < 0 {
			return 0, fmt.Errorf("%w: h(%v) = %d", ErrNegativeHeuristic, s, est)
		}

		return g + est, nil
	})
}

// frontierItem is a queued node keyed by its state.
type frontierItem[S any] struct {
	id       NodeID
	state    S
	priority int
}

// bestFirst is the loop shared by uniform-cost search and A*. priority maps
// a state and its path cost g to the queue priority.
func (r *run[S]) bestFirst(priority func(s S, g int) (int, error)) (Result[S], error) {
	p := r.p
	root := r.tree.Root(p.start)
	if p.IsGoal(p.start) {
		return r.finish(root, true), nil
	}

	rootPriority, err := priority(p.start, 0)
	if err != nil {
		return r.fail(err)
	}

	frontier := pq.New(
		func(it frontierItem[S]) S { return it.state },
		func(a, b frontierItem[S]) int { return cmp.Compare(a.priority, b.priority) },
	)
	frontier.Offer(frontierItem[S]{id: root, state: p.start, priority: rootPriority})
	best := map[S]int{p.start: rootPriority}

	for {
		cur, ok := frontier.Poll()
		if !ok {
			break
		}
		if p.IsGoal(cur.state) {
			return r.finish(cur.id, true), nil
		}

		for _, e := range r.expand(cur.id) {
			n, err := r.tree.extend(cur.id, e)
			if err != nil {
				return r.fail(err)
			}
			prio, err := priority(e, n.G)
			if err != nil {
				return r.fail(err)
			}
			if known, seen := best[e]; seen && prio >= known {
				continue
			}
			best[e] = prio
			// Either e is not queued, or its queued priority equals the old
			// best entry, which prio beats: the offer always lands.
			frontier.Offer(frontierItem[S]{id: r.tree.push(n), state: e, priority: prio})
		}
	}

	return r.finish(NoParent, false), nil
}
