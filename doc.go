// Package lvsearch finds paths through abstract state spaces: supply a start
// state, successor enumeration and transition costs, and pick an algorithm.
//
// What is in the box?
//
//	pq/               generic indexed min-priority queue with decrease-key
//	search/           State contract, node arena, Problem and six algorithms
//	graphspace/       directed weighted graphs (explicit or random) as State spaces
//	gridgraph/        2D mazes of weighted cells (parsed or random) as State spaces
//	driver/           benchmark harness: config, concurrent runner, report, metrics
//	cmd/searchdriver/ cobra CLI over driver
//
// Algorithms (methods on search.Problem):
//
//	BFS                 fewest transitions
//	UniformCost         least total cost
//	DFS                 path-checking depth-first
//	DepthLimitedDFS     depth-first with a bound, reports pruning
//	IterativeDeepening  depth limits 1, 2, 3, … until solved or exhausted
//	AStar               least total cost guided by a heuristic
//
// Quick example:
//
//	g, _ := graphspace.Random(100, 0.1, graphspace.WithSeed(1), graphspace.WithRandomCosts())
//	p, _ := g.Problem(0, 99)
//	h, _ := g.HopHeuristic(99)
//	res, _ := p.AStar(h)
//	fmt.Print(search.FormatPath(res))
//
// Benchmark from the shell:
//
//	go run ./cmd/searchdriver run --problems 10 --nodes 100 --density 0.1
//	go run ./cmd/searchdriver run --domain grid --nodes 400 --walls 0.3
package lvsearch
