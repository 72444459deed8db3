package search

import (
	"log/slog"
)

// Problem pairs a start state with an optional explicit goal. All search
// algorithms are methods on Problem.
type Problem[S State[S]] struct {
	start   S
	goal    S
	hasGoal bool
}

// ProblemOption configures a Problem at construction.
type ProblemOption[S State[S]] func(*Problem[S])

// WithGoal makes the goal test an equality check against goal instead of
// delegating to State.IsGoal.
func WithGoal[S State[S]](goal S) ProblemOption[S] {
	return func(p *Problem[S]) {
		p.goal = goal
		p.hasGoal = true
	}
}

// NewProblem returns a Problem searching from start.
func NewProblem[S State[S]](start S, opts ...ProblemOption[S]) *Problem[S] {
	p := &Problem[S]{start: start}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start returns the start state.
func (p *Problem[S]) Start() S { return p.start }

// Goal returns the explicit goal, if one was set.
func (p *Problem[S]) Goal() (S, bool) { return p.goal, p.hasGoal }

// IsGoal applies the goal test: equality with the explicit goal when set,
// otherwise s.IsGoal().
func (p *Problem[S]) IsGoal(s S) bool {
	if p.hasGoal {
		return s == p.goal
	}

	return s.IsGoal()
}

// Result is the outcome of one search invocation.
type Result[S State[S]] struct {
	// Algorithm names the search that produced the result.
	Algorithm string

	// Found is false when the frontier was exhausted without reaching a goal.
	Found bool

	// Goal addresses the terminal node in Tree, or NoParent if !Found.
	Goal NodeID

	// Tree holds every node the invocation created.
	Tree *Tree[S]

	// Expanded counts Successors calls made by this invocation
	// (summed over all rounds for iterative deepening).
	Expanded int64

	// Pruned reports that a depth limit made the search ignore at least one
	// state, so a solution may exist deeper. Depth-limited searches only.
	Pruned bool

	// Limit is the depth limit of the final round (depth-limited searches only).
	Limit int
}

// Node returns the terminal node.
func (r Result[S]) Node() (Node[S], bool) {
	if !r.Found {
		return Node[S]{}, false
	}

	return r.Tree.Node(r.Goal), true
}

// Path returns the solution states from start to goal, or nil.
func (r Result[S]) Path() []S {
	if !r.Found {
		return nil
	}

	return r.Tree.Path(r.Goal)
}

// Cost returns the cumulative cost of the solution, or 0 if none was found.
func (r Result[S]) Cost() int {
	n, _ := r.Node()

	return n.G
}

// Length returns the number of transitions in the solution, or 0.
func (r Result[S]) Length() int {
	n, _ := r.Node()

	return n.Depth
}

// Generated returns how many nodes the invocation created.
func (r Result[S]) Generated() int {
	if r.Tree == nil {
		return 0
	}

	return r.Tree.Len()
}

// run carries the mutable state of one search invocation.
type run[S State[S]] struct {
	p         *Problem[S]
	opts      Options
	algorithm string
	tree      *Tree[S]
	expanded  int64
}

func (p *Problem[S]) newRun(algorithm string, opts Options) *run[S] {
	opts.Logger.Debug("search started", slog.String("algorithm", algorithm))

	return &run[S]{
		p:         p,
		opts:      opts,
		algorithm: algorithm,
		tree:      NewTree[S](opts.TreeCapacity),
	}
}

// expand enumerates the successors of node id and records the expansion.
func (r *run[S]) expand(id NodeID) []S {
	r.expanded++
	if r.opts.Counter != nil {
		r.opts.Counter.Inc()
	}

	return r.tree.nodes[id].State.Successors()
}

// finish builds the Result and logs it.
func (r *run[S]) finish(goal NodeID, found bool) Result[S] {
	res := Result[S]{
		Algorithm: r.algorithm,
		Found:     found,
		Goal:      NoParent,
		Tree:      r.tree,
		Expanded:  r.expanded,
	}
	if found {
		res.Goal = goal
	}
	r.opts.Logger.Debug("search finished",
		slog.String("algorithm", r.algorithm),
		slog.Bool("found", found),
		slog.Int64("expanded", r.expanded),
		slog.Int("generated", r.tree.Len()),
		slog.Int("cost", res.Cost()),
	)

	return res
}

// fail logs err and returns it with an empty Result.
func (r *run[S]) fail(err error) (Result[S], error) {
	r.opts.Logger.Debug("search aborted",
		slog.String("algorithm", r.algorithm),
		slog.Int64("expanded", r.expanded),
		slog.Any("error", err),
	)

	return Result[S]{Algorithm: r.algorithm, Goal: NoParent}, err
}
