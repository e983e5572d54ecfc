// Package gridgraph_test provides benchmarks for component discovery and island expansion.
package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecgrid/grid"
	"github.com/katalvlaran/vecgrid/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 board with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g := grid.FilledByRowMajor(func() int { return rng.Intn(5) }, n, n)
	gg, err := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkExpandIsland measures ExpandIsland between two 1-cell islands at
// opposite corners of a 1000×1000 board.
// Complexity: O(W×H×d)
func BenchmarkExpandIsland(b *testing.B) {
	const n = 1000
	g := grid.New[int](n, n)
	_ = g.Set(0, 0, 1)
	_ = g.Set(n-1, n-1, 1)

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(g, opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	if len(gg.ConnectedComponents()) != 2 {
		b.Fatal("expected two islands in setup grid")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ExpandIsland(0, 1)
	}
}
