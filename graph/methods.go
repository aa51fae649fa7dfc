// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node/edge lifecycle and queries.
// Determinism:
//   - Edges() in ID order; Neighbors() ascending.
// AI-HINT (file):
//   - AddEdge validates endpoints, loop, multi-edge and attribute policy, in that order.
//   - Use HasEdge before AddEdge to collapse duplicates on a simple graph.

package graph

import (
	"fmt"
	"sort"
)

// AddNode appends a node and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(attrs NodeAttrs) int {
	g.nodes = append(g.nodes, attrs)
	g.adjacency = append(g.adjacency, nil)

	return len(g.nodes) - 1
}

// AddEdge joins u and v and returns the new edge ID.
//
// Steps:
//  1. Validate both endpoints exist (ErrVertexNotFound).
//  2. Reject loops unless WithLoops (ErrLoopNotAllowed).
//  3. Reject parallel edges unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//  4. Enforce attribute policy: attrs != nil iff WithEdgeAttrs (ErrEdgeAttrPolicy).
//  5. Store and link adjacency, mirrored for u≠v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, attrs *EdgeAttrs) (int, error) {
	if !g.hasNode(u) {
		return 0, fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !g.hasNode(v) {
		return 0, fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, v, ErrVertexNotFound)
	}
	if u == v && !g.allowLoops {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.HasEdge(u, v) {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	if (attrs != nil) != g.edgeAttrs {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrEdgeAttrPolicy)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Attrs: attrs})
	g.link(u, v, id)
	if u != v {
		g.link(v, u, id)
	}

	return id, nil
}

// link records edge id in adjacency[u][v].
func (g *Graph) link(u, v, id int) {
	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[int][]int)
	}
	g.adjacency[u][v] = append(g.adjacency[u][v], id)
}

func (g *Graph) hasNode(u int) bool { return u >= 0 && u < len(g.nodes) }

// HasNode reports whether index u is a node.
func (g *Graph) HasNode(u int) bool { return g.hasNode(u) }

// Node returns the attributes of node u.
func (g *Graph) Node(u int) (NodeAttrs, error) {
	if !g.hasNode(u) {
		return NodeAttrs{}, fmt.Errorf("Node(%d): %w", u, ErrVertexNotFound)
	}

	return g.nodes[u], nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// HasEdge reports whether at least one edge joins u and v (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.hasNode(u) || !g.hasNode(v) {
		return false
	}

	return len(g.adjacency[u][v]) > 0
}

// EdgesBetween returns every edge joining u and v, in ID order.
func (g *Graph) EdgesBetween(u, v int) []Edge {
	if !g.hasNode(u) || !g.hasNode(v) {
		return nil
	}
	ids := g.adjacency[u][v]
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}

	return out
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return g.edges[id], nil
}

// Edges returns all edges in ID order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the distinct nodes adjacent to u in ascending order.
// A self-loop makes u its own neighbor.
// Complexity: O(d log d).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.hasNode(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.adjacency[u]))
	for v := range g.adjacency[u] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edge endpoints at u; a self-loop counts twice.
func (g *Graph) Degree(u int) (int, error) {
	if !g.hasNode(u) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrVertexNotFound)
	}
	deg := 0
	for v, ids := range g.adjacency[u] {
		if v == u {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}

// ContainsEdgeAttr reports whether the edges of g carry EdgeAttrs.
func (g *Graph) ContainsEdgeAttr() bool { return g.edgeAttrs }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
