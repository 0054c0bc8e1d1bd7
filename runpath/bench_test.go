package runpath_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/costgrid"
	"github.com/katalvlaran/gridpath/runpath"
)

// benchGrid builds an n×n digit grid from a fixed seed so every
// benchmark run searches identical input.
func benchGrid(b *testing.B, n int) *costgrid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	sb.Grow(n*n + n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// 1–9: keeps the Manhattan heuristic tight.
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	g, err := costgrid.Parse(sb.String())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	return g
}

// BenchmarkMinCost_ShortRuns measures the free-turning variant
// (minRun=0, maxRun=3) on a 100×100 grid.
// Complexity: O(V·R·log(V·R)) with V=10⁴, R=3.
func BenchmarkMinCost_ShortRuns(b *testing.B) {
	g := benchGrid(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runpath.MinCost(g, 0, 3); err != nil {
			b.Fatalf("MinCost failed: %v", err)
		}
	}
}

// BenchmarkMinCost_LongRuns measures the momentum-heavy variant
// (minRun=4, maxRun=10) on a 100×100 grid; the deeper run alphabet
// grows the augmented state space by roughly 3×.
func BenchmarkMinCost_LongRuns(b *testing.B) {
	g := benchGrid(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runpath.MinCost(g, 4, 10); err != nil {
			b.Fatalf("MinCost failed: %v", err)
		}
	}
}
