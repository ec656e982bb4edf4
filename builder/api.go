// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// api.go - bipartite reductions: Assignment and Transportation.
//
// Contract:
//   - costs is a Left×Right matrix (else ErrBadSize); Left, Right ≥ 1
//     (else ErrTooFewVertices).
//   - Cross edges are added row-major, so their IDs follow the matrix order
//     after the source edges.
//   - Solving yields the cheapest plan that moves as much as possible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/flow"
)

const (
	methodAssignment     = "Assignment"
	methodTransportation = "Transportation"
	minPartitionSize     = 1
)

// Bipartite is a source → left → right → sink network built from a cost
// matrix.
type Bipartite struct {
	Network
	Left  int
	Right int

	cross []int // edge IDs of left→right edges, row-major
}

// Shipment is a positive flow on one left→right edge, in partition indices.
type Shipment struct {
	From   int
	To     int
	Amount int64
	Cost   int64
}

// LeftNode returns the node index of left element i.
func (b *Bipartite) LeftNode(i int) int { return 1 + i }

// RightNode returns the node index of right element j.
func (b *Bipartite) RightNode(j int) int { return 1 + b.Left + j }

// Shipments lists the cross edges carrying flow, in matrix order.
func (b *Bipartite) Shipments() ([]Shipment, error) {
	var out []Shipment
	for _, id := range b.cross {
		a, err := b.Arc(id)
		if err != nil {
			return nil, err
		}
		if a.Flow == 0 {
			continue
		}
		out = append(out, Shipment{
			From:   a.From - 1,
			To:     a.To - 1 - b.Left,
			Amount: a.Flow,
			Cost:   a.Cost,
		})
	}

	return out, nil
}

// Assignment builds the network for assigning len(costs) workers to
// len(costs[0]) jobs, each worker and job used at most once. costs[i][j] is
// the cost of worker i doing job j.
func Assignment(costs [][]int64) (*Bipartite, error) {
	left, right, err := matrixShape(methodAssignment, costs)
	if err != nil {
		return nil, err
	}

	return bipartite(methodAssignment, ones(left), ones(right), costs, 1)
}

// Transportation builds the network for shipping supply[i] units from each
// supplier and at most demand[j] units to each consumer. costs[i][j] is the
// per-unit cost from supplier i to consumer j.
func Transportation(supply, demand []int64, costs [][]int64) (*Bipartite, error) {
	left, right, err := matrixShape(methodTransportation, costs)
	if err != nil {
		return nil, err
	}
	if len(supply) != left || len(demand) != right {
		return nil, fmt.Errorf("%s: %d supplies and %d demands for a %d×%d matrix: %w",
			methodTransportation, len(supply), len(demand), left, right, ErrBadSize)
	}
	var total int64
	for i, s := range supply {
		if s < 0 {
			return nil, fmt.Errorf("%s: supply[%d]=%d: %w", methodTransportation, i, s, ErrBadSize)
		}
		total += s
	}
	for j, d := range demand {
		if d < 0 {
			return nil, fmt.Errorf("%s: demand[%d]=%d: %w", methodTransportation, j, d, ErrBadSize)
		}
	}

	return bipartite(methodTransportation, supply, demand, costs, total)
}

// matrixShape validates that costs is a non-empty rectangle.
func matrixShape(method string, costs [][]int64) (int, int, error) {
	if len(costs) < minPartitionSize || len(costs[0]) < minPartitionSize {
		return 0, 0, fmt.Errorf("%s: empty cost matrix: %w", method, ErrTooFewVertices)
	}
	right := len(costs[0])
	for i, row := range costs {
		if len(row) != right {
			return 0, 0, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				method, i, len(row), right, ErrBadSize)
		}
	}

	return len(costs), right, nil
}

func bipartite(method string, supply, demand []int64, costs [][]int64, crossCap int64) (*Bipartite, error) {
	left, right := len(supply), len(demand)
	g, err := flow.NewNetwork[int64](left + right + 2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	b := &Bipartite{
		Network: Network{Network: g, Source: 0, Sink: left + right + 1},
		Left:    left,
		Right:   right,
		cross:   make([]int, 0, left*right),
	}

	for i, s := range supply {
		if _, err = g.AddEdge(b.Source, b.LeftNode(i), s, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for i, row := range costs {
		for j, c := range row {
			id, err := g.AddEdge(b.LeftNode(i), b.RightNode(j), crossCap, c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			b.cross = append(b.cross, id)
		}
	}
	for j, d := range demand {
		if _, err = g.AddEdge(b.RightNode(j), b.Sink, d, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return b, nil
}

func ones(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
