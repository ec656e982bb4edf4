// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the network is built.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-edge capacity generator. The function
// must not return a negative value. Panics on nil.
func WithCapacityFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithUniformCapacity draws capacities uniformly from [min, max].
// Panics unless 0 ≤ min ≤ max.
func WithUniformCapacity(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithUniformCapacity requires 0 ≤ min ≤ max, got %d, %d", min, max))
	}
	return WithCapacityFn(uniform(min, max))
}

// WithUniformCost draws costs uniformly from [min, max]. Negative costs are
// allowed; a random network with negative costs may contain negative cycles.
// Panics if max < min.
func WithUniformCost(min, max int64) BuilderOption {
	if max < min {
		panic(fmt.Sprintf("builder: WithUniformCost requires min ≤ max, got %d, %d", min, max))
	}
	return WithCostFn(uniform(min, max))
}

// uniform samples [min, max] inclusive; a nil rng yields min.
func uniform(min, max int64) func(*rand.Rand) int64 {
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
