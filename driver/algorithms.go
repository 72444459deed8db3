package driver

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// algorithm describes a search the driver can run.
type algorithm struct {
	name string

	// title heads the algorithm's report section.
	title string

	// exhaustive marks searches whose cost explodes on a problem with no
	// solution (unbounded path-checking DFS enumerates every simple path);
	// the runner skips them on unsolvable problems.
	exhaustive bool
}

// algorithmTable lists every algorithm in canonical order.
var algorithmTable = []algorithm{
	{name: search.AlgorithmBFS, title: "BFS"},
	{name: search.AlgorithmUniformCost, title: "UNIFORM COST SEARCH"},
	{name: search.AlgorithmDFS, title: "DEPTH FIRST", exhaustive: true},
	{name: search.AlgorithmDepthLimitedDFS, title: "DEPTH LIMITED"},
	{name: search.AlgorithmIterativeDeepening, title: "ITERATIVE DEEPENING", exhaustive: true},
	{name: search.AlgorithmAStar, title: "A*"},
}

// algorithms indexes algorithmTable by name.
var algorithms = func() map[string]algorithm {
	m := make(map[string]algorithm, len(algorithmTable))
	for _, a := range algorithmTable {
		m[a.name] = a
	}

	return m
}()

func isAlgorithm(name string) bool {
	_, ok := algorithms[name]
	return ok
}

// Algorithms returns the names the driver accepts, in canonical order.
func Algorithms() []string {
	names := make([]string, len(algorithmTable))
	for i, a := range algorithmTable {
		names[i] = a.name
	}

	return names
}

// solution is a search result with the state type erased, so problems of
// every domain report the same way.
type solution struct {
	found    bool
	expanded int64
	length   int
	cost     int
	path     string
}

// solveFunc runs the named algorithm on one problem.
type solveFunc func(name string, cfg Config, opts ...search.Option) (solution, error)

// solver binds a search problem and its A* heuristic into a solveFunc.
func solver[S search.State[S]](p *search.Problem[S], h search.Heuristic[S]) solveFunc {
	return func(name string, cfg Config, opts ...search.Option) (solution, error) {
		res, err := dispatch(p, h, name, cfg, opts)
		if err != nil {
			return solution{}, err
		}
		sol := solution{
			found:    res.Found,
			expanded: res.Expanded,
			length:   res.Length(),
			cost:     res.Cost(),
		}
		if cfg.PrintPaths {
			sol.path = search.FormatPath(res)
		}

		return sol, nil
	}
}

func dispatch[S search.State[S]](p *search.Problem[S], h search.Heuristic[S], name string, cfg Config, opts []search.Option) (search.Result[S], error) {
	switch name {
	case search.AlgorithmBFS:
		return p.BFS(opts...)
	case search.AlgorithmUniformCost:
		return p.UniformCost(opts...)
	case search.AlgorithmDFS:
		return p.DFS(opts...)
	case search.AlgorithmDepthLimitedDFS:
		return p.DepthLimitedDFS(cfg.DepthLimit, opts...)
	case search.AlgorithmIterativeDeepening:
		return p.IterativeDeepening(append(opts, search.WithMaxLimit(cfg.MaxDeepening))...)
	case search.AlgorithmAStar:
		return p.AStar(h, opts...)
	default:
		return search.Result[S]{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
