package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// State is a position in a GridGraph for one (start, goal) pair. Two states
// are equal iff they share grid, start, goal and position.
type State struct {
	g     *GridGraph
	at    Point
	start Point
	goal  Point
}

// State satisfies search.State; instantiating Problem checks the constraint.
var _ *search.Problem[State]

// State returns the state at p for the problem start → goal. All three cells
// must be open.
func (gg *GridGraph) State(at, start, goal Point) (State, error) {
	for _, p := range [...]Point{at, start, goal} {
		if err := gg.checkOpen(p); err != nil {
			return State{}, fmt.Errorf("State(%v, %v, %v): %w", at, start, goal, err)
		}
	}

	return State{g: gg, at: at, start: start, goal: goal}, nil
}

// Problem returns a search problem from start whose goal test is the state's
// own predicate (position == goal).
func (gg *GridGraph) Problem(start, goal Point) (*search.Problem[State], error) {
	s, err := gg.State(start, start, goal)
	if err != nil {
		return nil, err
	}

	return search.NewProblem(s), nil
}

// Point returns the position of s.
func (s State) Point() Point { return s.at }

// Successors returns the open neighbors of s in NeighborOffsets order.
func (s State) Successors() []State {
	nbrs := s.g.Neighbors(s.at)
	out := make([]State, len(nbrs))
	for i, p := range nbrs {
		out[i] = State{g: s.g, at: p, start: s.start, goal: s.goal}
	}

	return out
}

// TransitionCost returns the entry cost of next's cell.
// Panics with an error wrapping ErrNotAdjacent if next is not a neighbor.
func (s State) TransitionCost(next State) int {
	if next.g != s.g || !s.g.Adjacent(s.at, next.at) {
		panic(fmt.Errorf("TransitionCost(%v→%v): %w", s.at, next.at, ErrNotAdjacent))
	}

	return s.g.CellValues[next.at.Y][next.at.X]
}

// IsGoal reports whether s is at the goal.
func (s State) IsGoal() bool { return s.at == s.goal }

// IsStart reports whether s is at the start.
func (s State) IsStart() bool { return s.at == s.start }

// String renders "State: (x,y)".
func (s State) String() string { return "State: " + s.at.String() }
