package flow

// SaturatedEdges returns the (from, to) pairs of every edge added with AddEdge
// whose flow equals its capacity. Pairs are ordered by tail node, then by the
// order edges were added at that node. Zero-capacity edges are trivially
// saturated and are included.
//
// It is a pure read: calling it twice without an intervening MinCostFlow
// returns identical slices.
//
// Errors:
//   - ErrNotSolved if MinCostFlow has not completed its potential pass yet.
//
// Complexity: O(V + E).
func (nw *Network[C]) SaturatedEdges() ([]NodePair, error) {
	if !nw.solved {
		return nil, ErrNotSolved
	}

	var out []NodePair
	for u, ids := range nw.adj {
		for _, id := range ids {
			e := &nw.edges[id]
			if !e.reverse && e.flow == e.cap {
				out = append(out, NodePair{From: u, To: e.to})
			}
		}
	}

	return out, nil
}

// Arc returns a snapshot of the edge with the given ID.
func (nw *Network[C]) Arc(id int) (Arc[C], error) {
	if id < 0 || id >= nw.EdgeCount() {
		return Arc[C]{}, ErrEdgeNotFound
	}

	return nw.arc(id), nil
}

// Arcs returns snapshots of all edges in ID order.
func (nw *Network[C]) Arcs() []Arc[C] {
	out := make([]Arc[C], nw.EdgeCount())
	for id := range out {
		out[id] = nw.arc(id)
	}

	return out
}

func (nw *Network[C]) arc(id int) Arc[C] {
	fwd := &nw.edges[2*id]
	bwd := &nw.edges[fwd.rev]

	return Arc[C]{
		ID:       id,
		From:     bwd.to,
		To:       fwd.to,
		Capacity: fwd.cap,
		Flow:     fwd.flow,
		Cost:     fwd.cost,
	}
}
