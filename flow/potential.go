package flow

// initPotentials computes shortest-path distances from source over the true
// edge costs, restricted to edges with residual capacity, and stores them as
// the starting potential vector. Nodes the source cannot reach are left out
// of live and their potential is meaningless.
//
// It is a queue-based Bellman–Ford (SPFA) with the small-label-first rule: a
// node whose new label is not larger than the queue head's is pushed to the
// front. Each update records the hop count of the walk that produced it; with
// no negative cycle that walk is simple, so a hop count reaching n proves a
// negative-cost cycle is reachable and ErrNegativeCycle is returned.
//
// On success every residual edge u→v with live[u] satisfies
// cost(u,v) + pot[u] - pot[v] ≥ 0.
//
// Complexity: O(V·E) worst case, typically near O(E).
func (nw *Network[C]) initPotentials(source int) error {
	n := len(nw.adj)
	pot, live := nw.pot, nw.live
	for i := range pot {
		pot[i], live[i] = 0, false
	}
	hops := make([]int, n)
	queued := make([]bool, n)
	q := newDeque[int](n)

	live[source] = true
	q.pushBack(source)
	queued[source] = true

	for q.len() > 0 {
		u := q.popFront()
		queued[u] = false

		for _, id := range nw.adj[u] {
			e := &nw.edges[id]
			if e.residual() <= 0 {
				continue
			}
			cand := pot[u] + e.cost
			if live[e.to] && cand >= pot[e.to] {
				continue
			}
			pot[e.to], live[e.to] = cand, true
			hops[e.to] = hops[u] + 1
			if hops[e.to] >= n {
				return ErrNegativeCycle
			}

			if queued[e.to] {
				continue
			}
			if q.len() > 0 && cand > pot[q.front()] {
				q.pushBack(e.to)
			} else {
				q.pushFront(e.to)
			}
			queued[e.to] = true
		}
	}

	return nil
}
