package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// DistanceHeuristic returns an admissible and consistent A* estimate for
// problems whose goal is the given cell: the move distance to goal
// (Manhattan under Conn4, Chebyshev under Conn8) times MinCost. A move
// changes the distance by at most one and costs at least MinCost.
func (gg *GridGraph) DistanceHeuristic(goal Point) (search.Heuristic[State], error) {
	if err := gg.checkOpen(goal); err != nil {
		return nil, fmt.Errorf("DistanceHeuristic(%v): %w", goal, err)
	}
	unit := gg.MinCost()
	dist := manhattan
	if gg.Conn == Conn8 {
		dist = chebyshev
	}

	return func(s State) int {
		return unit * dist(s.at, goal)
	}, nil
}

func manhattan(a, b Point) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

func chebyshev(a, b Point) int { return max(abs(a.X-b.X), abs(a.Y-b.Y)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
