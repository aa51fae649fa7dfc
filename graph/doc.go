// SPDX-License-Identifier: MIT

// Package graph provides the intermediate graph representation a graph-domain
// lifting builds from a data record before constructing higher-order cells.
//
// The Graph G = (V,E) is undirected and keyed by dense integer indices:
//
//   - Nodes 0..n-1 carry an immutable NodeAttrs{Features, Dim: 0}.
//   - Edges carry an optional immutable EdgeAttrs{Features, Dim: 1}; whether
//     edges carry attributes is a graph-wide policy (WithEdgeAttrs), so either
//     every edge has attributes or none does.
//   - Self-loops are permitted only with WithLoops.
//   - Parallel edges are permitted only with WithMultiEdges; otherwise a
//     second edge between the same endpoints (in either direction) is
//     rejected with ErrMultiEdgeNotAllowed and HasEdge lets callers collapse
//     duplicates themselves.
//
// Determinism:
//
//	Edges() returns edges in insertion (ID) order; Neighbors() returns sorted
//	indices. Iteration never depends on map order.
//
// Concurrency:
//
//	A Graph is built and consumed within one lifting call and is not
//	synchronized. Concurrent reads of a fully built Graph are safe.
//
// Errors:
//
//	ErrVertexNotFound      - index outside [0, NodeCount()).
//	ErrEdgeNotFound        - edge ID outside [0, EdgeCount()).
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrEdgeAttrPolicy      - attributes supplied (or missing) against the graph policy.
package graph
