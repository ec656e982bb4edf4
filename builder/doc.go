// Package builder constructs min-cost-flow networks for common problem shapes
// and random fixtures.
//
// The package offers the following key components:
//
//   - Random fixtures:
//     – RandomSparse(n, p, opts...): every ordered pair u→v (u≠v) becomes an
//     edge with probability p; capacities and costs come from the options.
//   - Reductions:
//     – Assignment(costs):              workers × jobs, one unit each.
//     – Transportation(sup, dem, costs): suppliers × consumers with amounts.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed / WithRand: deterministic randomness.
//     – WithCapacityFn / WithCostFn and their Uniform helpers.
//
// Node layout of a Bipartite network:
//
//	0                      source
//	1 … Left               left partition (workers, suppliers)
//	Left+1 … Left+Right    right partition (jobs, consumers)
//	Left+Right+1           sink
//
// Guarantees:
//
//   - Determinism: the same inputs, options and seed produce identical
//     networks, edge IDs included.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
package builder
