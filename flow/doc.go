// Package flow computes minimum-cost flows on directed capacitated networks
// with per-unit edge costs.
//
// Given a source, a sink and an optional cap on the amount of flow, it finds
// the largest flow value up to the cap and, among all flows of that value, one
// of minimum total cost. Assignment, transportation and scheduling problems
// reduce to this form.
//
// # Algorithm
//
// Successive shortest paths with Johnson potentials:
//
//   - SPFA (queue-based Bellman–Ford)
//
//   - Method: one pass from the source over the true costs, restricted to
//     edges with residual capacity, yields a feasible potential vector.
//
//   - Time:   O(V · E) worst case; run once per MinCostFlow call.
//
//   - Detects negative-cost cycles reachable from the source and reports
//     ErrNegativeCycle instead of looping.
//
//   - Dijkstra over reduced costs
//
//   - Method: edge weight cost(u,v) + pot[u] - pot[v], non-negative under
//     valid potentials, so negative true costs are handled.
//
//   - Time:   O((V + E) log V) per augmentation.
//
//   - Augmentation
//
//   - Method: pot[v] += dist[v] for every reached node, then push the
//     bottleneck residual capacity along the shortest path. The path's true
//     cost telescopes to pot[sink] - pot[source].
//
// Total: O(V·E + F·(V + E) log V), where F is the number of augmentations.
// With integral capacities F is finite but may be as large as the flow value.
//
// # Representation
//
// Edges live in one arena slice. AddEdge appends a forward edge and its
// reverse twin (capacity 0, negated cost) at consecutive indices; each stores
// the index of the other, and pushing x units forward adds x to the forward
// flow and subtracts x from the reverse flow. Node adjacency lists hold arena
// indices in insertion order.
//
// Costs are generic over Cost (signed integers and floats). Capacities and
// flows are int64.
//
// # API
//
//	nw, _ := flow.NewNetwork[int64](4)
//	nw.AddEdge(0, 1, 2, 1)
//	...
//	f, c, err := nw.MinCostFlow(0, 3, flow.DefaultOptions())
//	pairs, _ := nw.SaturatedEdges()
//
// FlowOptions:
//
//	type FlowOptions struct {
//	    Ctx       context.Context  // checked once per augmentation
//	    FlowLimit int64            // Unbounded: maximum flow; 0: nothing
//	    Verbose   bool             // debug-log each augmentation
//	    Logger    *zerolog.Logger  // verbose sink; nil discards
//	}
//
// # Errors
//
//	ErrInvalidNodeCount - NewNetwork with n < 0.
//	ErrNodeOutOfRange   - node index outside [0, n).
//	EdgeError           - negative capacity; unwraps to ErrInvalidCapacity.
//	ErrSourceIsSink     - source == sink.
//	ErrInvalidFlowLimit - FlowLimit < 0.
//	ErrNegativeCycle    - negative-cost cycle reachable from the source.
//	ErrNotSolved        - SaturatedEdges before MinCostFlow.
//	ErrEdgeNotFound     - Arc with an unknown ID.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is cancelled.
//
// An unreachable sink is a normal outcome, not an error.
//
// A Network is not safe for concurrent use.
package flow
