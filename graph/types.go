// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeAttrs/EdgeAttrs containers, Edge, Graph, options and sentinels.

package graph

import "errors"

// Cell dimensions of the two structural element kinds a Graph holds.
const (
	NodeDim = 0
	EdgeDim = 1
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrEdgeAttrPolicy indicates edge attributes disagree with the graph's edge-attribute policy.
	ErrEdgeAttrPolicy = errors.New("graph: edge attributes violate graph policy")
)

// NodeAttrs is the immutable payload of a node cell.
// Features is shared with the caller and must be treated as read-only.
type NodeAttrs struct {
	Features []float64
	Dim      int
}

// NewNodeAttrs returns NodeAttrs tagged Dim 0.
func NewNodeAttrs(features []float64) NodeAttrs {
	return NodeAttrs{Features: features, Dim: NodeDim}
}

// EdgeAttrs is the immutable payload of an edge cell.
// Features is shared with the caller and must be treated as read-only.
type EdgeAttrs struct {
	Features []float64
	Dim      int
}

// NewEdgeAttrs returns EdgeAttrs tagged Dim 1.
func NewEdgeAttrs(features []float64) *EdgeAttrs {
	return &EdgeAttrs{Features: features, Dim: EdgeDim}
}

// Edge is an undirected connection between two node indices.
// From/To keep the orientation the edge was inserted with.
type Edge struct {
	ID    int
	From  int
	To    int
	Attrs *EdgeAttrs // nil unless the graph carries edge attributes
}

// Other returns the endpoint of e opposite to u.
func (e Edge) Other(u int) int {
	if e.From == u {
		return e.To
	}

	return e.From
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// WithEdgeAttrs declares that every edge carries EdgeAttrs.
func WithEdgeAttrs() Option {
	return func(g *Graph) { g.edgeAttrs = true }
}

// Graph is an undirected graph over dense integer node indices.
type Graph struct {
	allowLoops bool
	allowMulti bool
	edgeAttrs  bool

	nodes []NodeAttrs // node index → attributes
	edges []Edge      // edge ID → edge

	// adjacency[u][v] lists the IDs of edges joining u and v (mirrored for u≠v).
	adjacency []map[int][]int
}

// New creates an empty Graph. By default loops and multi-edges are rejected
// and edges carry no attributes.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
