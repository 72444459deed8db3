// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// state.go - search.State implementation over a Graph.

package graphspace

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// State is a position in a Graph for one (start, goal) pair. It is
// comparable: two states are equal iff they share graph, start, goal and node.
type State struct {
	g     *Graph
	start int
	goal  int
	node  int
}

// State satisfies search.State; instantiating Problem checks the constraint.
var _ *search.Problem[State]

// State returns the state for node in the problem (start → goal).
func (g *Graph) State(node, start, goal int) (State, error) {
	for _, id := range [...]int{node, start, goal} {
		if err := g.checkNode(id); err != nil {
			return State{}, fmt.Errorf("State(%d, %d, %d): %w", node, start, goal, err)
		}
	}

	return State{g: g, start: start, goal: goal, node: node}, nil
}

// Problem returns a search problem from start whose goal test is the
// state's own predicate (node == goal).
func (g *Graph) Problem(start, goal int) (*search.Problem[State], error) {
	s, err := g.State(start, start, goal)
	if err != nil {
		return nil, err
	}

	return search.NewProblem(s), nil
}

// Node returns the graph node of s.
func (s State) Node() int { return s.node }

// Successors returns one state per outgoing edge, in ascending node order.
func (s State) Successors() []State {
	succ := s.g.Successors(s.node)
	out := make([]State, len(succ))
	for i, v := range succ {
		out[i] = State{g: s.g, start: s.start, goal: s.goal, node: v}
	}

	return out
}

// TransitionCost returns the cost of the edge s→next.
// Panics with an error wrapping ErrNoEdge when no such edge exists.
func (s State) TransitionCost(next State) int {
	if next.g != s.g {
		panic(fmt.Errorf("TransitionCost(%d→%d): states of different graphs: %w", s.node, next.node, ErrNoEdge))
	}
	c, err := s.g.Cost(s.node, next.node)
	if err != nil {
		panic(err)
	}

	return c
}

// IsGoal reports whether s is the goal node.
func (s State) IsGoal() bool { return s.node == s.goal }

// IsStart reports whether s is the start node.
func (s State) IsStart() bool { return s.node == s.start }

// String renders "State: <node>".
func (s State) String() string { return fmt.Sprintf("State: %d", s.node) }
