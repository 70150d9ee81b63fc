package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/assign/hungarian"
)

// benchmarkSolve runs Solve on a seeded random r×c instance. The matrix is
// generated once outside the loop; each iteration re-solves from scratch.
func benchmarkSolve(b *testing.B, r, c int) {
	rng := rand.New(rand.NewSource(1))
	cost := make([][]float64, r)
	for i := range cost {
		cost[i] = make([]float64, c)
		for j := range cost[i] {
			cost[i][j] = rng.Float64() * 1000
		}
	}
	opts := hungarian.DefaultOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := hungarian.Solve(cost, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Square10 benchmarks a small 10×10 instance.
func BenchmarkSolve_Square10(b *testing.B) {
	benchmarkSolve(b, 10, 10)
}

// BenchmarkSolve_Square50 benchmarks a medium 50×50 instance.
func BenchmarkSolve_Square50(b *testing.B) {
	benchmarkSolve(b, 50, 50)
}

// BenchmarkSolve_Square200 benchmarks a larger 200×200 instance.
func BenchmarkSolve_Square200(b *testing.B) {
	benchmarkSolve(b, 200, 200)
}

// BenchmarkSolve_Wide50x200 benchmarks a wide rectangle (rows ≤ cols).
func BenchmarkSolve_Wide50x200(b *testing.B) {
	benchmarkSolve(b, 50, 200)
}

// BenchmarkSolve_Tall200x50 benchmarks the transposed (rows > cols) path.
func BenchmarkSolve_Tall200x50(b *testing.B) {
	benchmarkSolve(b, 200, 50)
}
