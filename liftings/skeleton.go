// SPDX-License-Identifier: MIT
//
// File: skeleton.go
// Role: Shared 0/1-skeleton extraction and matrix assembly for the builders.
// Determinism:
//   - Edges are the distinct non-loop pairs (u<v) in ascending order.

package liftings

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topolift/graph"
	"github.com/katalvlaran/topolift/tensor"
)

// skeleton is the simple undirected 1-skeleton of a graph.
type skeleton struct {
	nodes int
	edges [][2]int
	index map[[2]int]int
	x0    *tensor.Dense
	x1    *tensor.Dense // nil unless edge attributes were carried
}

// newSkeleton collapses loops and parallel edges of g.
func newSkeleton(g *graph.Graph) (*skeleton, error) {
	s := &skeleton{nodes: g.NodeCount(), index: make(map[[2]int]int)}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		key := [2]int{min(e.From, e.To), max(e.From, e.To)}
		if _, ok := s.index[key]; ok {
			continue
		}
		s.index[key] = 0
		s.edges = append(s.edges, key)
	}
	sort.Slice(s.edges, func(a, b int) bool { return lessTuple(s.edges[a][:], s.edges[b][:]) })
	for i, e := range s.edges {
		s.index[e] = i
	}

	x0, err := nodeFeatures(g)
	if err != nil {
		return nil, err
	}
	s.x0 = x0
	if g.ContainsEdgeAttr() {
		if s.x1, err = s.edgeFeatures(g); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// edge returns the index of the edge joining u and v.
func (s *skeleton) edge(u, v int) (int, bool) {
	i, ok := s.index[[2]int{min(u, v), max(u, v)}]

	return i, ok
}

// incidence1 returns the signed node × edge incidence: −1 at the lower
// endpoint, +1 at the upper.
func (s *skeleton) incidence1() *tensor.Dense {
	b, _ := tensor.NewDense(s.nodes, len(s.edges))
	for j, e := range s.edges {
		_ = b.Set(e[0], j, -1)
		_ = b.Set(e[1], j, 1)
	}

	return b
}

func nodeFeatures(g *graph.Graph) (*tensor.Dense, error) {
	rows := make([][]float64, g.NodeCount())
	for i := range rows {
		n, err := g.Node(i)
		if err != nil {
			return nil, err
		}
		rows[i] = n.Features
	}
	x, err := tensor.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("node features: %w", err)
	}

	return x, nil
}

// edgeFeatures takes, per skeleton edge, the attributes of the first
// graph edge joining its endpoints.
func (s *skeleton) edgeFeatures(g *graph.Graph) (*tensor.Dense, error) {
	rows := make([][]float64, len(s.edges))
	for i, e := range s.edges {
		rows[i] = g.EdgesBetween(e[0], e[1])[0].Attrs.Features
	}
	x, err := tensor.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("edge features: %w", err)
	}

	return x, nil
}

// lessTuple orders equal-length int tuples lexicographically.
func lessTuple(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// gram returns mᵀm when transpose is set, m·mᵀ otherwise.
func gram(m *tensor.Dense, transpose bool) (*tensor.Dense, error) {
	mt, err := tensor.Transpose(m)
	if err != nil {
		return nil, err
	}
	if transpose {
		return tensor.Mul(mt, m)
	}

	return tensor.Mul(m, mt)
}
