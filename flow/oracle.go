package flow

import "container/heap"

// shortestPaths runs Dijkstra from source using reduced costs
// cost(u,v) + pot[u] - pot[v] over edges with residual capacity.
// It fills dist and reached for the nodes it reaches, sets the parent trace,
// and reports whether sink was reached.
//
// Valid potentials keep every reduced cost non-negative even though some true
// costs are negative. Nodes outside live were unreachable in the initial
// residual graph; no augmentation can make them reachable, so
// edges into them are skipped.
//
// Stale heap entries are skipped lazily instead of using decrease-key.
//
// Complexity: O((V + E) log V).
func (nw *Network[C]) shortestPaths(source, sink int) bool {
	dist, reached := nw.dist, nw.reached
	for i := range reached {
		reached[i] = false
	}
	dist[source], reached[source] = 0, true

	nw.pq = nw.pq[:0]
	heap.Push(&nw.pq, pqItem[C]{node: source, dist: 0})

	for nw.pq.Len() > 0 {
		item := heap.Pop(&nw.pq).(pqItem[C])
		u := item.node
		if dist[u] < item.dist {
			continue // stale entry
		}

		for _, id := range nw.adj[u] {
			e := &nw.edges[id]
			if e.residual() <= 0 || !nw.live[e.to] {
				continue
			}
			nd := dist[u] + e.cost + nw.pot[u] - nw.pot[e.to]
			if reached[e.to] && nd >= dist[e.to] {
				continue
			}
			dist[e.to], reached[e.to] = nd, true
			nw.par[e.to] = u
			nw.parEdge[e.to] = id
			heap.Push(&nw.pq, pqItem[C]{node: e.to, dist: nd})
		}
	}

	return reached[sink]
}

// pqItem is a (node, tentative distance) heap entry.
type pqItem[C Cost] struct {
	node int
	dist C
}

// nodePQ is a min-heap of pqItem ordered by dist.
type nodePQ[C Cost] []pqItem[C]

func (pq nodePQ[C]) Len() int           { return len(pq) }
func (pq nodePQ[C]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[C]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[C]) Push(x any) { *pq = append(*pq, x.(pqItem[C])) }

func (pq *nodePQ[C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
