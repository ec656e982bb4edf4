// Package mcflow computes minimum-cost maximum flows on directed capacitated
// networks: the largest amount of flow from a source to a sink (optionally
// capped at a limit) that has the smallest total cost.
//
// 🚀 What is mcflow?
//
//	A small library and CLI built around one engine:
//		• Residual graph as an edge arena with paired reverse edges
//		• Initial potentials from SPFA, so negative edge costs are allowed
//		• Dijkstra over reduced costs for every augmenting path
//		• Negative cycles reachable from the source are reported, not looped on
//		• Generic costs: any signed integer or float type
//
// ✨ Why choose mcflow?
//
//   - Exact: successive shortest paths keep every partial flow min-cost
//   - Predictable: the same network and options give the same flows, edge by edge
//   - Cancellable: FlowOptions.Ctx is checked between augmentations
//
// Under the hood, everything is organized under these packages:
//
//	flow/               Network, MinCostFlow, SaturatedEdges and arc inspection
//	builder/            random fixtures plus Assignment and Transportation reductions
//	internal/netfile/   text and YAML network files
//	cmd/mcflow/         the "solve" and "gen" commands
//
// Quick ASCII example:
//
//	    ┌──(2, $1)──► 1 ──(2, $1)──┐
//	    0                          ▼
//	    └──(3, $2)──► 2 ──(3, $1)──► 3
//
//	routes flow 5 at cost 13 from 0 to 3.
//
//	go get github.com/katalvlaran/mcflow/flow
package mcflow
