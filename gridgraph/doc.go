// Package gridgraph treats a 2D grid of cells as a search space: open cells
// are positions, moves go to adjacent open cells, and entering a cell costs
// its value.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold;
//     cells below it are walls.
//   - NewGridGraph, ParseMaze (text) and Random (seeded mazes) build grids.
//   - ConnectedComponents / Reachable: contiguous regions of open cells.
//   - GridGraph.State / GridGraph.Problem: the search.State implementation.
//   - DistanceHeuristic: Manhattan (Conn4) or Chebyshev (Conn8) distance
//     times the cheapest cell, admissible and consistent.
//
// Complexity:
//
//   - ConnectedComponents, Reachable: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - State.Successors:               O(d).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value of an open cell.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - Random: WithSeed / WithRand, WithMaxCost, WithConnectivity.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: bad input grid.
//   - ErrOutOfBounds, ErrBlocked: start, goal or state on a bad cell.
//   - ErrNotAdjacent: wrapped in the panic of State.TransitionCost.
//   - ErrBadMaze, ErrInvalidWalls, ErrNeedRandSource: builders.
package gridgraph
