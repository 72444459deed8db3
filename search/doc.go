// Package search finds paths through abstract state spaces with uninformed
// and cost-aware algorithms.
//
// What
//
//   - A domain implements State[S]: successor enumeration, transition costs,
//     goal/start predicates, and Go equality as state identity.
//   - Problem[S] holds the start state and an optional explicit goal.
//   - Six algorithms run on a Problem and return a Result:
//   - BFS                fewest transitions, goal test at generation
//   - UniformCost        least total cost, goal test at dequeue
//   - DFS                path-checking depth-first
//   - DepthLimitedDFS    DFS bounded by a depth limit, reports pruning
//   - IterativeDeepening DepthLimitedDFS with limits 1, 2, 3, …
//   - AStar              least total cost guided by a Heuristic
//
// Paths
//
//	Every invocation owns a Tree: an arena of immutable Node records, each
//	holding its parent's NodeID, cumulative cost G and Depth. Walking parent
//	ids from Result.Goal reaches the root; Result.Path returns the states in
//	start→goal order. Improving a path always appends a new node, so no
//	descendant ever carries a stale cost.
//
// Outcomes
//
//   - Found == true:  Result.Path, Cost and Length describe the solution.
//   - Found == false: the frontier was exhausted (normal, not an error).
//   - error:          a precondition failed (negative cost or heuristic
//     estimate, nil heuristic, negative depth limit).
//
// Determinism
//
//	Given a deterministic Successors order, every algorithm visits states in a
//	reproducible order and returns the same solution on every run.
//
// Concurrency
//
//	A search is synchronous and single-threaded. Concurrent searches are safe
//	as long as the state graph is not mutated; a Counter passed through
//	WithCounter may be shared between them.
//
// Usage
//
//	p := search.NewProblem(start, search.WithGoal(goal))
//	res, err := p.AStar(h, search.WithCounter(&c), search.WithLogger(log))
//	if err != nil {
//	    // ErrNegativeCost, ErrNegativeHeuristic, ErrNilHeuristic
//	}
//	if res.Found {
//	    fmt.Print(search.FormatPath(res))
//	}
package search
