package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/advent/gridgraph"
)

// randomGrid builds a deterministic n×n grid of weights 1–9.
func randomGrid(tb testing.TB, n int, seed int64) *gridgraph.Grid {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1 + r.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		tb.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkLowestRisk measures corner-to-corner search on a 500×500 grid
// obtained by tiling a random 100×100 grid five times.
// Complexity: O(W×H·log(W×H))
func BenchmarkLowestRisk(b *testing.B) {
	g, err := randomGrid(b, 100, 42).Tile(5)
	if err != nil {
		b.Fatalf("setup Tile failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gridgraph.LowestRisk(g)
	}
}

// BenchmarkTile measures the 5× expansion of a 100×100 grid.
func BenchmarkTile(b *testing.B) {
	g := randomGrid(b, 100, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Tile(5)
	}
}
