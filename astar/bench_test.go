package astar_test

import (
	"fmt"
	"testing"

	"github.com/vkomarov/wayfind/astar"
	"github.com/vkomarov/wayfind/core"
)

// BenchmarkPath_Chain measures the search on a linear chain of N edges,
// the worst case for the carried-path copies.
func BenchmarkPath_Chain(b *testing.B) {
	const N = 1000
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	src, dst := "v0", fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := astar.Path(g, src, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPath_Grid measures the search on an n×n unit grid with the
// Manhattan heuristic guiding expansion.
func BenchmarkPath_Grid(b *testing.B) {
	const n = 30
	g := gridGraph(n)
	dst := fmt.Sprintf("%d,%d", n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := astar.Path(g, "0,0", dst, astar.WithHeuristic(manhattan)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPathLength_Relative measures the history-dependent weight path
// on the ratio-weight fixture.
func BenchmarkPathLength_Relative(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A1", -2)
	_, _ = g.AddEdge("A1", "T", 7)
	_, _ = g.AddEdge("S", "A2", 1)
	_, _ = g.AddEdge("A2", "B2", 1)
	_, _ = g.AddEdge("B2", "C2", 1)
	_, _ = g.AddEdge("C2", "T", 1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := astar.PathLength(g, "S", "T", astar.WithWeightFunc(ratioWeight)); err != nil {
			b.Fatal(err)
		}
	}
}
