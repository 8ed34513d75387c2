package edges_test

import (
	"testing"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/gridgraph"
	"github.com/katalvlaran/fhseg/pixel"
)

// benchmarkCompute measures a 640×480 sweep with a reused buffer.
// Complexity: O(W×H)
func benchmarkCompute(b *testing.B, conn gridgraph.Connectivity, workers int) {
	src := mustGray(b, randomGray(640, 480, 7))
	var buf edges.List

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		buf, err = edges.AppendCompute(buf, src, conn, edges.WithWorkers(workers))
		if err != nil {
			b.Fatalf("AppendCompute: %v", err)
		}
	}
}

func BenchmarkCompute_Conn4(b *testing.B)          { benchmarkCompute(b, gridgraph.Conn4, 1) }
func BenchmarkCompute_Conn8(b *testing.B)          { benchmarkCompute(b, gridgraph.Conn8, 1) }
func BenchmarkCompute_Conn8_Parallel(b *testing.B) { benchmarkCompute(b, gridgraph.Conn8, 0) }

// BenchmarkCompute_Lab measures the three-band Euclidean weigher.
func BenchmarkCompute_Lab(b *testing.B) {
	lab := pixel.NewPlanar[float32](640, 480, 3)
	for k, band := range lab.Bands {
		for i := range band {
			band[i] = float32((i*(k+3))%101) - 50
		}
	}
	src, err := edges.NewPlanar(lab, edges.Euclidean)
	if err != nil {
		b.Fatalf("NewPlanar: %v", err)
	}
	var buf edges.List

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ = edges.AppendCompute(buf, src, gridgraph.Conn8)
	}
}
