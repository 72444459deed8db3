// SPDX-License-Identifier: MIT
// Package: lvsearch/graphspace
//
// graph.go - directed weighted graph with bitmap adjacency rows.
//
// Layout:
//   • rows[u] is a Roaring bitmap of the successors of u; iteration is in
//     ascending node order, which fixes the successor order of every State.
//   • costs is a dense n×n matrix (0 ⇒ no edge) for O(1) cost lookups.
//
// Concurrency:
//   • AddEdge is not synchronized. Once building is done the graph is only
//     read, and concurrent searches over it are safe.

package graphspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Graph is a directed graph over nodes 0..n-1 with positive integer costs.
type Graph struct {
	n     int
	rows  []*roaring.Bitmap
	costs []int
	edges int
}

// New returns an edgeless graph with n nodes.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewNodes)
	}
	rows := make([]*roaring.Bitmap, n)
	for i := range rows {
		rows[i] = roaring.New()
	}

	return &Graph{
		n:     n,
		rows:  rows,
		costs: make([]int, n*n),
	}, nil
}

// AddEdge adds or re-weights the edge u→v.
func (g *Graph) AddEdge(u, v, cost int) error {
	if err := g.checkNode(u); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, err)
	}
	if err := g.checkNode(v); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, err)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d→%d): %w", u, v, ErrSelfLoop)
	}
	if cost < 1 {
		return fmt.Errorf("AddEdge(%d→%d, cost=%d): %w", u, v, cost, ErrBadCost)
	}
	if g.rows[u].CheckedAdd(uint32(v)) {
		g.edges++
	}
	g.costs[u*g.n+v] = cost

	return nil
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int { return g.edges }

// IsEdge reports whether u→v exists. Out-of-range ids report false.
func (g *Graph) IsEdge(u, v int) bool {
	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return false
	}

	return g.costs[u*g.n+v] != 0
}

// Cost returns the cost of u→v, or an error wrapping ErrNoEdge.
func (g *Graph) Cost(u, v int) (int, error) {
	if !g.IsEdge(u, v) {
		return 0, fmt.Errorf("Cost(%d→%d): %w", u, v, ErrNoEdge)
	}

	return g.costs[u*g.n+v], nil
}

// Successors returns the successors of u in ascending order.
func (g *Graph) Successors(u int) []int {
	row := g.rows[u]
	out := make([]int, 0, row.GetCardinality())
	it := row.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// String lists each node followed by its successors, one node per line.
func (g *Graph) String() string {
	var b strings.Builder
	for u := 0; u < g.n; u++ {
		b.WriteString(strconv.Itoa(u))
		b.WriteString(":\t")
		for _, v := range g.Successors(u) {
			b.WriteString("\t")
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (g *Graph) checkNode(u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("node %d not in [0,%d): %w", u, g.n, ErrNodeOutOfRange)
	}

	return nil
}
