package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

func benchGrid(b *testing.B, side int) *gridgraph.GridGraph {
	b.Helper()
	gg, err := gridgraph.Random(side, side, 0.2, gridgraph.WithSeed(1), gridgraph.WithMaxCost(5))
	if err != nil {
		b.Fatal(err)
	}

	return gg
}

// BenchmarkConnectedComponents_500x500 labels a 500×500 random maze.
func BenchmarkConnectedComponents_500x500(b *testing.B) {
	gg := benchGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

func BenchmarkAStar_100x100(b *testing.B) {
	gg := benchGrid(b, 100)
	goal := gridgraph.Point{X: 99, Y: 99}
	p, err := gg.Problem(gridgraph.Point{}, goal)
	if err != nil {
		b.Fatal(err)
	}
	h, _ := gg.DistanceHeuristic(goal)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.AStar(h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUniformCost_100x100(b *testing.B) {
	gg := benchGrid(b, 100)
	p, err := gg.Problem(gridgraph.Point{}, gridgraph.Point{X: 99, Y: 99})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.UniformCost(); err != nil {
			b.Fatal(err)
		}
	}
}
