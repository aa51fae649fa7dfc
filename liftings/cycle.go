// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Graph → cell complex with 2-cells glued along a cycle basis.
// Determinism:
//   - 2-cells follow dfs.CycleBasis order.

package liftings

import (
	"fmt"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/dfs"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

// CellCycleLifting attaches one 2-cell per cycle of a fundamental cycle
// basis of the graph.
type CellCycleLifting struct {
	// MaxCellLength drops cycles with more boundary edges; 0 keeps all.
	MaxCellLength int
}

// Domain implements lifting.Lifting.
func (CellCycleLifting) Domain() lifting.Domain { return lifting.Graph }

// LiftTopology emits incidence_1, incidence_2, shape, x_0 and x_1 when
// edge attributes were carried.
func (l CellCycleLifting) LiftTopology(rec *data.Record, p lifting.Params) (topology.Descriptor, error) {
	if l.MaxCellLength < 0 {
		return nil, fmt.Errorf("CellCycleLifting: MaxCellLength %d: %w", l.MaxCellLength, ErrInvalidParam)
	}
	g, err := lifting.BuildGraph(rec, p.PreserveEdgeAttr)
	if err != nil {
		return nil, fmt.Errorf("CellCycleLifting: %w", err)
	}
	sk, err := newSkeleton(g)
	if err != nil {
		return nil, fmt.Errorf("CellCycleLifting: %w", err)
	}
	basis, err := dfs.CycleBasis(g)
	if err != nil {
		return nil, fmt.Errorf("CellCycleLifting: %w", err)
	}
	cells := basis[:0:0]
	for _, c := range basis {
		if l.MaxCellLength == 0 || len(c) <= l.MaxCellLength {
			cells = append(cells, c)
		}
	}

	b2, err := sk.cellBoundary(cells)
	if err != nil {
		return nil, fmt.Errorf("CellCycleLifting: %w", err)
	}
	topo := topology.Descriptor{
		topology.IncidenceKey(1): sk.incidence1(),
		topology.IncidenceKey(2): b2,
		topology.KeyShape:        []int{sk.nodes, len(sk.edges), len(cells)},
		topology.FeatureKey(0):   sk.x0,
	}
	if sk.x1 != nil {
		topo[topology.FeatureKey(1)] = sk.x1
	}

	return topo, nil
}

// cellBoundary returns the signed edge × cell incidence: an edge walked
// from its lower to its upper endpoint has coefficient +1, otherwise −1.
func (s *skeleton) cellBoundary(cells [][]int) (*tensor.Dense, error) {
	b, _ := tensor.NewDense(len(s.edges), len(cells))
	for j, c := range cells {
		for i, u := range c {
			v := c[(i+1)%len(c)]
			e, ok := s.edge(u, v)
			if !ok {
				return nil, fmt.Errorf("cell %d: (%d,%d) is not an edge: %w", j, u, v, ErrInvalidParam)
			}
			sign := 1.0
			if u > v {
				sign = -1
			}
			_ = b.Set(e, j, sign)
		}
	}

	return b, nil
}
