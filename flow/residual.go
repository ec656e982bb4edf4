package flow

import "fmt"

// edge is one half of a forward/reverse pair stored in the Network arena.
// Forward edges live at even arena indices, their reverse twins at the next odd one.
// A reverse edge has capacity 0, so pushing flow across its forward twin drives
// its flow negative, and -flow is the amount available for cancellation.
type edge[C Cost] struct {
	to      int   // head node
	rev     int   // arena index of the paired edge
	flow    int64 // current flow; may be negative on reverse edges
	cap     int64 // capacity; 0 on reverse edges
	cost    C     // cost per unit; negated on reverse edges
	reverse bool  // true for the synthetic reverse half
}

// residual returns the amount of flow the edge can still carry.
func (e *edge[C]) residual() int64 { return e.cap - e.flow }

// Network is a directed capacitated graph with per-unit edge costs over nodes
// 0..n-1, together with the state MinCostFlow needs between iterations.
//
// A Network is not safe for concurrent use: MinCostFlow mutates edge flows and
// the potential vector in place.
type Network[C Cost] struct {
	edges []edge[C] // arena; see edge
	adj   [][]int   // adj[u] = arena indices of edges leaving u, insertion order

	pot     []C    // node potentials, meaningful where live is set
	live    []bool // live[v]: v was reachable when the potentials were computed
	dist    []C    // reduced distances from the last oracle call
	reached []bool // reached[v]: dist[v] was set by the last oracle call
	par     []int // par[v] = predecessor of v on the last shortest path
	parEdge []int // parEdge[v] = arena index of the edge par[v]→v
	pq      nodePQ[C]

	solved bool
}

// NewNetwork returns an empty network over n nodes indexed 0..n-1.
//
// Complexity: O(n) time and memory.
func NewNetwork[C Cost](n int) (*Network[C], error) {
	if n < 0 {
		return nil, ErrInvalidNodeCount
	}

	return &Network[C]{
		adj:     make([][]int, n),
		pot:     make([]C, n),
		live:    make([]bool, n),
		dist:    make([]C, n),
		reached: make([]bool, n),
		par:     make([]int, n),
		parEdge: make([]int, n),
	}, nil
}

// NodeCount returns the number of nodes fixed at construction.
func (nw *Network[C]) NodeCount() int { return len(nw.adj) }

// EdgeCount returns the number of edges added with AddEdge.
// Reverse edges are not counted.
func (nw *Network[C]) EdgeCount() int { return len(nw.edges) / 2 }

// AddEdge registers a directed edge u→v with the given capacity and per-unit
// cost, and returns its ID. IDs are dense and follow insertion order.
//
// Alongside the forward edge a reverse edge v→u with capacity 0 and cost -cost
// is stored; each records the other's arena index so flow pushed across one is
// mirrored on its twin. Cost may be negative. Self-loops and parallel edges are
// accepted.
//
// Errors:
//   - ErrNodeOutOfRange if u or v is not a node of the network.
//   - *EdgeError (wrapping ErrInvalidCapacity) if capacity < 0.
//
// Complexity: O(1) amortized.
func (nw *Network[C]) AddEdge(u, v int, capacity int64, cost C) (int, error) {
	if err := nw.checkNode(u); err != nil {
		return -1, err
	}
	if err := nw.checkNode(v); err != nil {
		return -1, err
	}
	if capacity < 0 {
		return -1, &EdgeError{From: u, To: v, Cap: capacity}
	}

	fwd := len(nw.edges)
	bwd := fwd + 1
	nw.edges = append(nw.edges,
		edge[C]{to: v, rev: bwd, cap: capacity, cost: cost},
		edge[C]{to: u, rev: fwd, cap: 0, cost: -cost, reverse: true},
	)
	nw.adj[u] = append(nw.adj[u], fwd)
	nw.adj[v] = append(nw.adj[v], bwd)

	return fwd / 2, nil
}

// checkNode reports ErrNodeOutOfRange for indices outside the network.
func (nw *Network[C]) checkNode(v int) error {
	if v < 0 || v >= len(nw.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, len(nw.adj))
	}

	return nil
}
