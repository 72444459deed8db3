package search

import (
	"fmt"
	"log/slog"
)

// noLimit disables the depth bound in depthFirst.
const noLimit = -1

// DFS runs path-checking depth-first search.
//
// The frontier is LIFO and there is no global visited set: a successor is
// skipped only if it already lies on the path from the root to the node being
// expanded. The goal test is applied at generation. On graphs with cycles the
// result is neither optimal nor guaranteed to come quickly; combine with a
// depth limit (DepthLimitedDFS, IterativeDeepening) when that matters.
func (p *Problem[S]) DFS(opts ...Option) (Result[S], error) {
	r := p.newRun(AlgorithmDFS, resolveOptions(opts))

	goal, found, _, err := r.depthFirst(noLimit)
	if err != nil {
		return r.fail(err)
	}

	return r.finish(goal, found), nil
}

// DepthLimitedDFS runs DFS but never generates a node deeper than limit, so
// a returned path has at most limit transitions. Result.Pruned is true iff
// some off-path successor was ignored because of the limit; false means the
// reachable space was searched exhaustively.
//
// Returns ErrNegativeLimit if limit < 0.
func (p *Problem[S]) DepthLimitedDFS(limit int, opts ...Option) (Result[S], error) {
	if limit < 0 {
		return Result[S]{Algorithm: AlgorithmDepthLimitedDFS, Goal: NoParent},
			fmt.Errorf("%w: got %d", ErrNegativeLimit, limit)
	}

	return p.depthLimited(AlgorithmDepthLimitedDFS, limit, resolveOptions(opts))
}

// IterativeDeepening runs DepthLimitedDFS with limits 1, 2, 3, … and returns
// the first solution. It stops with no solution as soon as a round reports
// that nothing was pruned. On unit-cost graphs the solution has the fewest
// transitions, like BFS.
//
// With WithMaxLimit(n) the search also stops after round n; the Result then
// has Found == false and Pruned == true.
func (p *Problem[S]) IterativeDeepening(opts ...Option) (Result[S], error) {
	o := resolveOptions(opts)

	if p.IsGoal(p.start) {
		r := p.newRun(AlgorithmIterativeDeepening, o)

		return r.finish(r.tree.Root(p.start), true), nil
	}

	var (
		res      Result[S]
		err      error
		expanded int64
	)
	for limit := 1; o.MaxLimit == 0 || limit <= o.MaxLimit; limit++ {
		res, err = p.depthLimited(AlgorithmIterativeDeepening, limit, o)
		if err != nil {
			return res, err
		}
		expanded += res.Expanded
		if res.Found || !res.Pruned {
			break
		}
	}
	res.Expanded = expanded
	o.Logger.Debug("iterative deepening finished",
		slog.Int("limit", res.Limit),
		slog.Bool("found", res.Found),
		slog.Int64("expanded", expanded),
	)

	return res, nil
}

func (p *Problem[S]) depthLimited(algorithm string, limit int, o Options) (Result[S], error) {
	r := p.newRun(algorithm, o)

	goal, found, pruned, err := r.depthFirst(limit)
	if err != nil {
		return r.fail(err)
	}
	res := r.finish(goal, found)
	res.Pruned = pruned
	res.Limit = limit

	return res, nil
}

// depthFirst is the shared LIFO loop. limit < 0 means unbounded.
func (r *run[S]) depthFirst(limit int) (goal NodeID, found, pruned bool, err error) {
	root := r.tree.Root(r.p.start)
	if r.p.IsGoal(r.p.start) {
		return root, true, false, nil
	}

	stack := []NodeID{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth := r.tree.nodes[cur].Depth

		for _, e := range r.expand(cur) {
			if r.tree.OnPath(cur, e) {
				continue
			}
			if limit >= 0 && depth+1 > limit {
				pruned = true
				continue
			}
			id, err := r.tree.Child(e, cur)
			if err != nil {
				return NoParent, false, pruned, err
			}
			if r.p.IsGoal(e) {
				return id, true, pruned, nil
			}
			stack = append(stack, id)
		}
	}

	return NoParent, false, pruned, nil
}
