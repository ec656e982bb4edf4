// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil                      (pure unless seeded)
//   • capacityFn = constant defaultCapacity
//   • costFn     = constant defaultCost

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Capacity generator for generated edges.
	capacityFn func(*rand.Rand) int64
	// Cost generator for generated edges.
	costFn func(*rand.Rand) int64
}

const (
	defaultCapacity = int64(1)
	defaultCost     = int64(1)
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capacityFn: func(*rand.Rand) int64 { return defaultCapacity },
		costFn:     func(*rand.Rand) int64 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
