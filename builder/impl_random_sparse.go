// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): the source 0 and sink n-1 must differ.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Considers every ordered pair (u,v), u≠v, with probability p.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: u asc, then v asc. Capacity is drawn before cost.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/flow"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// Network is a generated network with its designated endpoints.
type Network struct {
	*flow.Network[int64]
	Source int
	Sink   int
}

// Solve runs MinCostFlow between the designated endpoints.
func (nw *Network) Solve(opts flow.FlowOptions) (int64, int64, error) {
	return nw.MinCostFlow(nw.Source, nw.Sink, opts)
}

// RandomSparse samples a directed network over n nodes in which each ordered
// pair u→v (u≠v) becomes an edge with probability p. Source is node 0 and
// sink is node n-1.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*Network, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g, err := flow.NewNetwork[int64](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			// p ∈ {0,1} is decided without touching the rng.
			switch {
			case p == probMin:
				continue
			case p < probMax && cfg.rng.Float64() >= p:
				continue
			}
			c, w := cfg.capacityFn(cfg.rng), cfg.costFn(cfg.rng)
			if _, err = g.AddEdge(u, v, c, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d, cap=%d, cost=%d): %w",
					methodRandomSparse, u, v, c, w, err)
			}
		}
	}

	return &Network{Network: g, Source: 0, Sink: n - 1}, nil
}
