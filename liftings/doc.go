// SPDX-License-Identifier: MIT

// Package liftings provides reference Graph-domain topology builders and a
// name → constructor catalog producing ready lifting.Transforms.
//
//	graph2simplicial/clique   SimplicialCliqueLifting  (clique complex)
//	graph2hypergraph/khop     HypergraphKHopLifting    (k-hop neighborhoods)
//	graph2cell/cycle          CellCycleLifting         (cycle-basis 2-cells)
//
// Every builder reconstructs the graph with lifting.BuildGraph, so the
// preserve_edge_attr option applies uniformly. Incidence matrices are
// signed, with each cell oriented by ascending vertex order; the feature
// strategies consume their absolute value.
package liftings
