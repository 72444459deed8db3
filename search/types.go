// Package search defines the State contract, tunable options, sentinel errors
// and the expansion counter shared by every search algorithm.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// State is the capability set a problem domain supplies.
//
// Identity is Go equality: two states are the same position iff == holds,
// which also makes them usable as map keys in visited/generated maps.
//
// Preconditions (documented, partly enforced):
//   - Successors returns the complete successor set, in a deterministic order.
//   - TransitionCost(next) is defined only for next ∈ Successors() and must be
//     nonnegative; searches return ErrNegativeCost otherwise. Asking for the
//     cost of a nonexistent transition is a domain-contract violation and the
//     domain may panic.
//   - The underlying state graph must not change while a search is running.
type State[S any] interface {
	comparable

	// Successors enumerates every state reachable in one transition.
	Successors() []S

	// TransitionCost returns cost(this, next).
	TransitionCost(next S) int

	// IsGoal reports whether the state satisfies the goal property.
	IsGoal() bool

	// IsStart reports whether the state is the start position.
	IsStart() bool
}

// Heuristic estimates the remaining cost from a state to the goal.
// A* returns optimal paths only if h never overestimates (admissible), and
// expands each state at most once only if h is also consistent. Neither
// property is verified; estimates must be nonnegative.
type Heuristic[S any] func(s S) int

// Zero returns the heuristic h ≡ 0, under which A* behaves like uniform-cost search.
func Zero[S any]() Heuristic[S] {
	return func(S) int { return 0 }
}

// Algorithm names reported in Result.Algorithm and log records.
const (
	AlgorithmBFS                = "bfs"
	AlgorithmUniformCost        = "ucs"
	AlgorithmDFS                = "dfs"
	AlgorithmDepthLimitedDFS    = "dls"
	AlgorithmIterativeDeepening = "ids"
	AlgorithmAStar              = "astar"
)

// Sentinel errors. Exhausting the frontier is never an error: it is reported
// as Result.Found == false.
var (
	// ErrNegativeCost is returned when a domain reports a negative transition cost.
	ErrNegativeCost = errors.New("search: negative transition cost")

	// ErrNilHeuristic is returned by AStar when no heuristic is supplied.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNegativeHeuristic is returned when a heuristic yields a negative estimate.
	ErrNegativeHeuristic = errors.New("search: negative heuristic estimate")

	// ErrNegativeLimit is returned by DepthLimitedDFS for a limit below zero.
	ErrNegativeLimit = errors.New("search: depth limit must be non-negative")
)

// Counter tracks state expansions (Successors calls). It replaces a
// process-wide static: each caller owns one, resets it explicitly, and may
// share it between concurrent searches.
type Counter struct {
	n atomic.Int64
}

// Inc records one expansion.
func (c *Counter) Inc() { c.n.Add(1) }

// Load returns the number of expansions recorded since the last Reset.
func (c *Counter) Load() int64 { return c.n.Load() }

// Reset sets the counter back to zero.
func (c *Counter) Reset() { c.n.Store(0) }

// Option configures a single search invocation.
type Option func(*Options)

// Options holds per-invocation settings.
type Options struct {
	// Counter, if non-nil, is incremented once per expansion in addition to
	// Result.Expanded.
	Counter *Counter

	// Logger receives debug records when a search starts and finishes.
	Logger *slog.Logger

	// MaxLimit, if > 0, caps the depth limit IterativeDeepening may reach.
	// 0 means no cap: deepening continues until a run prunes nothing.
	MaxLimit int

	// TreeCapacity pre-sizes the node arena.
	TreeCapacity int
}

// DefaultOptions returns Options with:
//   - no shared counter
//   - a logger that discards everything
//   - no iterative-deepening cap
//   - a small initial arena
func DefaultOptions() Options {
	return Options{
		Counter:      nil,
		Logger:       slog.New(slog.DiscardHandler),
		MaxLimit:     0,
		TreeCapacity: 64,
	}
}

// WithCounter makes the search also count expansions into c.
func WithCounter(c *Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// WithLogger routes debug records to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLimit caps IterativeDeepening at depth limit n.
// Panics if n < 0.
func WithMaxLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("search: WithMaxLimit(%d) must be non-negative", n))
	}

	return func(o *Options) {
		o.MaxLimit = n
	}
}

// WithTreeCapacity pre-sizes the node arena to n nodes.
// Panics if n < 0.
func WithTreeCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("search: WithTreeCapacity(%d) must be non-negative", n))
	}

	return func(o *Options) {
		o.TreeCapacity = n
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
