package flow

// MinCostFlow routes up to opts.FlowLimit units from source to sink at minimum
// total cost using successive shortest paths with node potentials.
//
// It returns:
//   - flow: the amount routed; the maximum flow when FlowLimit is Unbounded
//   - cost: the minimum total cost among all flows of that value
//   - err:  a structural error, or ctx.Err() if opts.Ctx was cancelled
//
// An unreachable sink is not an error: the result is the flow routed before
// the sink became unreachable, which is (0, 0) if it never was.
//
// Steps:
//  1. Normalize options and validate source, sink and FlowLimit. A FlowLimit
//     of 0 returns (0, 0) here without touching the flows.
//  2. Compute initial potentials with SPFA over the true costs (once).
//  3. Repeat until FlowLimit is reached:
//     a. Check for cancellation.
//     b. Dijkstra over reduced costs; stop if sink is unreachable.
//     c. Add the new distances to the potentials, push the bottleneck amount
//     along the parent trace and accrue bottleneck × (pot[sink] - pot[source]).
//
// Calling MinCostFlow again continues from the current flows: the residual
// graph of a min-cost flow has no negative cycle, so step 2 stays valid.
//
// Errors:
//   - ErrNodeOutOfRange, ErrSourceIsSink, ErrInvalidFlowLimit on bad arguments.
//   - ErrNegativeCycle if a negative-cost cycle is reachable from source.
//   - context.Canceled / context.DeadlineExceeded from opts.Ctx; flow and cost
//     then describe the augmentations already applied.
//
// Complexity:
//
//	Time:   O(V·E + F·(V + E) log V), F = number of augmentations.
//	Memory: O(V + E).
func (nw *Network[C]) MinCostFlow(source, sink int, opts FlowOptions) (flow int64, cost C, err error) {
	// 1) Normalize and validate
	opts.normalize()
	if opts.FlowLimit < 0 {
		return 0, 0, ErrInvalidFlowLimit
	}
	if err = nw.checkNode(source); err != nil {
		return 0, 0, err
	}
	if err = nw.checkNode(sink); err != nil {
		return 0, 0, err
	}
	if source == sink {
		return 0, 0, ErrSourceIsSink
	}
	if err = opts.Ctx.Err(); err != nil {
		return 0, 0, err
	}
	if opts.FlowLimit == 0 {
		nw.solved = true
		return 0, 0, nil
	}

	// 2) Feasible starting potentials
	if err = nw.initPotentials(source); err != nil {
		return 0, 0, err
	}
	nw.solved = true
	log := opts.Logger
	if opts.Verbose {
		log.Debug().
			Int("source", source).
			Int("sink", sink).
			Bool("sink_reachable", nw.live[sink]).
			Msg("flow: potentials ready")
	}

	// 3) Successive shortest paths
	for iteration := 1; flow < opts.FlowLimit; iteration++ {
		if err = opts.Ctx.Err(); err != nil {
			return flow, cost, err
		}
		if !nw.shortestPaths(source, sink) {
			break
		}
		pushed, unit := nw.augment(source, sink, opts.FlowLimit-flow)
		flow += pushed
		cost += unit * C(pushed)
		if opts.Verbose {
			log.Debug().
				Int("iteration", iteration).
				Int64("pushed", pushed).
				Interface("unit_cost", unit).
				Int64("flow", flow).
				Interface("cost", cost).
				Msg("flow: augmented")
		}
	}

	return flow, cost, nil
}

// augment applies one augmentation along the path found by the last
// shortestPaths call and returns the amount pushed and its true per-unit cost.
//
// The potential update comes first: after pot[v] += dist[v] the reduced costs
// along the path telescope, so the path's true cost is pot[sink] - pot[source].
// Nodes unreached this round keep their old potential.
func (nw *Network[C]) augment(source, sink int, remaining int64) (pushed int64, unit C) {
	for v, d := range nw.dist {
		if nw.reached[v] {
			nw.pot[v] += d
		}
	}

	pushed = remaining
	for v := sink; v != source; v = nw.par[v] {
		if r := nw.edges[nw.parEdge[v]].residual(); r < pushed {
			pushed = r
		}
	}

	for v := sink; v != source; v = nw.par[v] {
		id := nw.parEdge[v]
		nw.edges[id].flow += pushed
		nw.edges[nw.edges[id].rev].flow -= pushed
	}

	return pushed, nw.pot[sink] - nw.pot[source]
}
