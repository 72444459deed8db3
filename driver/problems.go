package driver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/graphspace"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// Problem is one random instance of the benchmark set. In the graph domain
// it searches from node 0 to node Nodes-1; in the grid domain from the top
// left to the bottom right corner of a square maze.
type Problem struct {
	// Index is the 0-based position in the set; the seed is Seed+Index.
	Index int

	// Domain is DomainGraph or DomainGrid; exactly one of Graph and Grid
	// is set accordingly.
	Domain string
	Graph  *graphspace.Graph
	Grid   *gridgraph.GridGraph

	// Solvable reports whether the goal is reachable from the start.
	Solvable bool

	solve solveFunc
}

// String renders the problem's graph or grid.
func (p Problem) String() string {
	if p.Grid != nil {
		return p.Grid.String()
	}
	if p.Graph != nil {
		return p.Graph.String()
	}

	return ""
}

// Solve runs the named algorithm on p and reports whether it found the
// goal and at what cost.
func (p Problem) Solve(name string, cfg Config, opts ...search.Option) (found bool, cost int, err error) {
	if p.solve == nil {
		return false, 0, fmt.Errorf("problem %d: not built by NewProblemSet", p.Index+1)
	}
	sol, err := p.solve(name, cfg, opts...)

	return sol.found, sol.cost, err
}

// NewProblemSet builds cfg.Problems random problems. Problem i is seeded
// with cfg.Seed+i, so a set is reproducible and independent of Parallelism.
func NewProblemSet(cfg Config) ([]Problem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	build := graphProblem
	if cfg.Domain == DomainGrid {
		build = gridProblem
	}
	set := make([]Problem, cfg.Problems)
	for i := range set {
		p, err := build(cfg, cfg.Seed+int64(i))
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", i+1, err)
		}
		p.Index = i
		set[i] = p
	}

	return set, nil
}

// graphProblem samples a directed graph with cfg.Nodes nodes and the hop
// heuristic for A*.
func graphProblem(cfg Config, seed int64) (Problem, error) {
	opts := []graphspace.Option{graphspace.WithSeed(seed)}
	if !cfg.UniformCosts {
		opts = append(opts, graphspace.WithRandomCosts())
	}
	g, err := graphspace.Random(cfg.Nodes, cfg.Density, opts...)
	if err != nil {
		return Problem{}, err
	}

	start, goal := 0, cfg.Nodes-1
	sp, err := g.Problem(start, goal)
	if err != nil {
		return Problem{}, err
	}
	h, err := g.HopHeuristic(goal)
	if err != nil {
		return Problem{}, err
	}
	reach, err := sp.BFS()
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Domain:   DomainGraph,
		Graph:    g,
		Solvable: reach.Found,
		solve:    solver(sp, h),
	}, nil
}

// gridProblem samples a square maze of at least cfg.Nodes cells with the
// distance heuristic for A*.
func gridProblem(cfg Config, seed int64) (Problem, error) {
	side := int(math.Ceil(math.Sqrt(float64(cfg.Nodes))))
	opts := []gridgraph.Option{gridgraph.WithSeed(seed)}
	if !cfg.UniformCosts {
		opts = append(opts, gridgraph.WithMaxCost(9))
	}
	gg, err := gridgraph.Random(side, side, cfg.Walls, opts...)
	if err != nil {
		return Problem{}, err
	}

	start, goal := gridgraph.Point{}, gridgraph.Point{X: side - 1, Y: side - 1}
	sp, err := gg.Problem(start, goal)
	if err != nil {
		return Problem{}, err
	}
	h, err := gg.DistanceHeuristic(goal)
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Domain:   DomainGrid,
		Grid:     gg,
		Solvable: gg.Reachable(start, goal),
		solve:    solver(sp, h),
	}, nil
}
