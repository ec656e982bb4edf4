package flow

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Network operations.
var (
	// ErrInvalidCapacity indicates an edge was added with a negative capacity.
	ErrInvalidCapacity = errors.New("flow: negative edge capacity")

	// ErrInvalidNodeCount indicates NewNetwork was called with a negative size.
	ErrInvalidNodeCount = errors.New("flow: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrSourceIsSink indicates MinCostFlow was asked to route from a node to itself.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrInvalidFlowLimit indicates a negative FlowLimit.
	ErrInvalidFlowLimit = errors.New("flow: flow limit must be non-negative")

	// ErrNegativeCycle indicates the residual graph contains a negative-cost
	// cycle reachable from the source, so no finite potentials exist.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle reachable from source")

	// ErrNotSolved indicates a result was requested before MinCostFlow ran.
	ErrNotSolved = errors.New("flow: network has not been solved")

	// ErrEdgeNotFound indicates an edge ID that AddEdge never returned.
	ErrEdgeNotFound = errors.New("flow: edge not found")
)

// EdgeError is returned by AddEdge when an edge has a negative capacity.
// It unwraps to ErrInvalidCapacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

func (e *EdgeError) Unwrap() error { return ErrInvalidCapacity }

// Unbounded is the FlowLimit that asks for the maximum flow.
const Unbounded int64 = math.MaxInt64

// Cost is the set of numeric types usable as per-unit edge costs.
// Costs may be negative, so unsigned integers are excluded. Any sum of edge
// costs along a simple path, and the total cost, must fit in C.
type Cost interface {
	constraints.Signed | constraints.Float
}

// FlowOptions configures MinCostFlow.
//   - Ctx: checked once per augmentation; cancellation stops the loop early.
//   - FlowLimit: stop once this much flow is routed. Unbounded asks for the
//     maximum flow; 0 routes nothing, so a zero FlowOptions{} is a no-op.
//   - Verbose: if true, logs the potential pass and each augmentation at debug level.
//   - Logger: destination for verbose output; nil means discard.
type FlowOptions struct {
	Ctx       context.Context
	FlowLimit int64
	Verbose   bool
	Logger    *zerolog.Logger
}

// DefaultOptions returns options for an uncapped, non-verbose run.
func DefaultOptions() FlowOptions {
	nop := zerolog.Nop()

	return FlowOptions{
		Ctx:       context.Background(),
		FlowLimit: Unbounded,
		Verbose:   false,
		Logger:    &nop,
	}
}

// normalize fills zero-valued Ctx and Logger with their defaults.
// FlowLimit is taken as given.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// NodePair is a directed (From, To) pair of node indices.
type NodePair struct {
	From, To int
}

// Arc is a read-only snapshot of one edge added with AddEdge.
type Arc[C Cost] struct {
	ID       int
	From, To int
	Capacity int64
	Flow     int64
	Cost     C
}

// Saturated reports whether the arc carries its full capacity.
func (a Arc[C]) Saturated() bool { return a.Flow == a.Capacity }
