package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridmap"
)

// BenchmarkCompute_Uniform measures a full run on a 300×300 open grid.
// Complexity: O(C log C)
func BenchmarkCompute_Uniform(b *testing.B) {
	m := mustMap(b, gridmap.Uniform(300, 300, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Compute(m, gridmap.At(0, 0)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompute_Random measures a run on a 300×300 map with random
// terrain and ~20% walls.
func BenchmarkCompute_Random(b *testing.B) {
	m := randomMap(b, 7, 300, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Compute(m, gridmap.At(0, 0)); err != nil {
			b.Fatal(err)
		}
	}
}
