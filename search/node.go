package search

import "fmt"

// NodeID addresses a Node inside a Tree.
type NodeID int

// NoParent is the parent of a root node, and the Goal of a failed Result.
const NoParent NodeID = -1

// Node is one discovered path from the start to State, stored as an
// immutable record. For a non-root node:
//
//	G     == parent.G + parent.State.TransitionCost(State)
//	Depth == parent.Depth + 1
type Node[S any] struct {
	State  S
	Parent NodeID
	G      int
	Depth  int
}

// IsRoot reports whether n has no predecessor.
func (n Node[S]) IsRoot() bool { return n.Parent == NoParent }

// Tree is the arena of Nodes created by one search invocation. A node's
// parent is always stored before it, so every parent chain is finite and
// acyclic. Nodes are never modified after insertion: a cheaper path to a
// state is a new node, which leaves existing descendants consistent.
type Tree[S State[S]] struct {
	nodes []Node[S]
}

// NewTree returns an empty arena with room for capacity nodes.
func NewTree[S State[S]](capacity int) *Tree[S] {
	return &Tree[S]{nodes: make([]Node[S], 0, capacity)}
}

// Root stores a start node (G=0, Depth=0) and returns its id.
func (t *Tree[S]) Root(s S) NodeID {
	return t.push(Node[S]{State: s, Parent: NoParent})
}

// Child stores a node for s reached from parent and returns its id.
// Returns ErrNegativeCost if the transition cost is negative.
func (t *Tree[S]) Child(s S, parent NodeID) (NodeID, error) {
	n, err := t.extend(parent, s)
	if err != nil {
		return NoParent, err
	}

	return t.push(n), nil
}

// Node returns the record stored under id. Panics if id is out of range.
func (t *Tree[S]) Node(id NodeID) Node[S] { return t.nodes[id] }

// Len reports how many nodes the arena holds.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Path returns the states from the root to id, in that order.
func (t *Tree[S]) Path(id NodeID) []S {
	if id == NoParent {
		return nil
	}
	path := make([]S, t.nodes[id].Depth+1)
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		n := t.nodes[cur]
		path[n.Depth] = n.State
	}

	return path
}

// OnPath reports whether s appears on the path from the root to id,
// id included.
func (t *Tree[S]) OnPath(id NodeID, s S) bool {
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		if t.nodes[cur].State == s {
			return true
		}
	}

	return false
}

// extend builds, without storing, the node for s reached from parent.
func (t *Tree[S]) extend(parent NodeID, s S) (Node[S], error) {
	p := t.nodes[parent]
	cost := p.State.TransitionCost(s)
	if cost < 0 {
		return Node[S]{}, fmt.Errorf("%w: %v → %v costs %d", ErrNegativeCost, p.State, s, cost)
	}

	return Node[S]{
		State:  s,
		Parent: parent,
		G:      p.G + cost,
		Depth:  p.Depth + 1,
	}, nil
}

func (t *Tree[S]) push(n Node[S]) NodeID {
	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}
