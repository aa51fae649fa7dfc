// SPDX-License-Identifier: MIT
//
// File: khop.go
// Role: Graph → hypergraph with one hyperedge per node's k-hop neighborhood.

package liftings

import (
	"fmt"

	"github.com/katalvlaran/topolift/bfs"
	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/tensor"
	"github.com/katalvlaran/topolift/topology"
)

var hyperedgeIncidenceKey = topology.IncidencePrefix + topology.HyperedgesSuffix

// DefaultK is the hop radius used when K is 0.
const DefaultK = 1

// HypergraphKHopLifting builds hyperedge i from every node within K hops
// of node i, node i included.
type HypergraphKHopLifting struct {
	// K is the hop radius; 0 selects DefaultK.
	K int
}

// Domain implements lifting.Lifting.
func (HypergraphKHopLifting) Domain() lifting.Domain { return lifting.Graph }

// LiftTopology emits incidence_hyperedges (nodes × hyperedges),
// num_hyperedges and x_0.
func (l HypergraphKHopLifting) LiftTopology(rec *data.Record, p lifting.Params) (topology.Descriptor, error) {
	k := l.K
	if k < 0 {
		return nil, fmt.Errorf("HypergraphKHopLifting: K %d: %w", k, ErrInvalidParam)
	}
	if k == 0 {
		k = DefaultK
	}
	g, err := lifting.BuildGraph(rec, p.PreserveEdgeAttr)
	if err != nil {
		return nil, fmt.Errorf("HypergraphKHopLifting: %w", err)
	}
	x0, err := nodeFeatures(g)
	if err != nil {
		return nil, fmt.Errorf("HypergraphKHopLifting: %w", err)
	}

	n := g.NodeCount()
	inc, _ := tensor.NewDense(n, n)
	for i := 0; i < n; i++ {
		members, err := bfs.Within(g, i, k)
		if err != nil {
			return nil, fmt.Errorf("HypergraphKHopLifting: hyperedge %d: %w", i, err)
		}
		for _, v := range members {
			_ = inc.Set(v, i, 1)
		}
	}

	return topology.Descriptor{
		hyperedgeIncidenceKey:     inc,
		topology.KeyNumHyperedges: n,
		topology.FeatureKey(0):    x0,
	}, nil
}
