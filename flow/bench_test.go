package flow_test

import (
	"testing"

	"github.com/katalvlaran/mcflow/builder"
	"github.com/katalvlaran/mcflow/flow"
)

// buildRandomNetwork constructs a network with V nodes and roughly p
// probability of an edge between any ordered pair u→v. Capacities are uniform
// in [1, maxCap] and costs in [0, maxCost].
func buildRandomNetwork(b *testing.B, V int, p float64, maxCap, maxCost int64, seed int64) *builder.Network {
	b.Helper()
	nw, err := builder.RandomSparse(V, p,
		builder.WithSeed(seed), // deterministic seed for reproducibility
		builder.WithUniformCapacity(1, maxCap),
		builder.WithUniformCost(0, maxCost),
	)
	if err != nil {
		b.Fatal(err)
	}

	return nw
}

// BenchmarkMinCostFlow measures MinCostFlow on graphs of increasing size.
// The network is rebuilt outside the timer because solving mutates it.
func BenchmarkMinCostFlow(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		maxCost  int64
		seed     int64
	}{
		{"Small", 100, 0.05, 10, 20, 42},
		{"Medium", 300, 0.02, 20, 50, 4242},
		{"Large", 800, 0.01, 50, 100, 424242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				nw := buildRandomNetwork(b, tc.vertices, tc.edgeProb, tc.maxCap, tc.maxCost, tc.seed)
				b.StartTimer()
				_, _, _ = nw.Solve(flow.DefaultOptions())
			}
		})
	}
}
