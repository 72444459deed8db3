// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// errors.go - sentinel errors for the graphspace package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (node ids, costs, parameters).
//   • Option constructors panic on meaningless input; builders never panic.
//   • TransitionCost on a missing edge panics wrapping ErrNoEdge: the search
//     engine only asks for costs of enumerated successors, so reaching it is
//     a programming error, not an input error.

package graphspace

import "errors"

// ErrTooFewNodes indicates a graph size below one node.
var ErrTooFewNodes = errors.New("graphspace: graph needs at least one node")

// ErrInvalidDensity indicates an edge density outside [0,1].
var ErrInvalidDensity = errors.New("graphspace: edge density out of range")

// ErrNeedRandSource indicates a random build without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("graphspace: rng is required")

// ErrNodeOutOfRange indicates a node id outside [0, NumNodes).
var ErrNodeOutOfRange = errors.New("graphspace: node out of range")

// ErrBadCost indicates an edge cost below one.
var ErrBadCost = errors.New("graphspace: edge cost must be positive")

// ErrSelfLoop indicates an edge from a node to itself.
var ErrSelfLoop = errors.New("graphspace: self-loops not allowed")

// ErrNoEdge indicates a transition cost request for a missing edge.
var ErrNoEdge = errors.New("graphspace: no edge between nodes")
