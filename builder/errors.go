// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w.
//   • Option constructors panic on meaningless values instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, partition size) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a cost matrix whose shape does not match the
// partitions, or a negative supply/demand amount.
var ErrBadSize = errors.New("builder: invalid size/amount")
