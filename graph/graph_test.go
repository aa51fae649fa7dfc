// SPDX-License-Identifier: MIT
// Package graph_test verifies option policies, adjacency mirroring and deterministic queries.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolift/graph"
)

// triangle builds 0-1-2 with plain edges.
func triangle(t *testing.T, opts ...graph.Option) *graph.Graph {
	t.Helper()
	g := graph.New(opts...)
	for i := 0; i < 3; i++ {
		g.AddNode(graph.NewNodeAttrs([]float64{float64(i)}))
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(p[0], p[1], nil)
		require.NoError(t, err)
	}

	return g
}

func TestGraph_Defaults(t *testing.T) {
	g := graph.New()
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())
	assert.False(t, g.ContainsEdgeAttr())
	assert.Equal(t, 0, g.NodeCount())
	assert.Empty(t, g.Edges())
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := triangle(t)

	tests := []struct {
		name    string
		u, v    int
		attrs   *graph.EdgeAttrs
		wantErr error
	}{
		{"unknown source", 5, 0, nil, graph.ErrVertexNotFound},
		{"unknown target", 0, -1, nil, graph.ErrVertexNotFound},
		{"loop", 1, 1, nil, graph.ErrLoopNotAllowed},
		{"duplicate", 0, 1, nil, graph.ErrMultiEdgeNotAllowed},
		{"reverse duplicate", 1, 0, nil, graph.ErrMultiEdgeNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.AddEdge(tt.u, tt.v, tt.attrs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_EdgeAttrPolicy(t *testing.T) {
	plain := graph.New()
	plain.AddNode(graph.NewNodeAttrs(nil))
	plain.AddNode(graph.NewNodeAttrs(nil))
	_, err := plain.AddEdge(0, 1, graph.NewEdgeAttrs([]float64{1}))
	require.ErrorIs(t, err, graph.ErrEdgeAttrPolicy)

	attributed := graph.New(graph.WithEdgeAttrs())
	attributed.AddNode(graph.NewNodeAttrs(nil))
	attributed.AddNode(graph.NewNodeAttrs(nil))
	_, err = attributed.AddEdge(0, 1, nil)
	require.ErrorIs(t, err, graph.ErrEdgeAttrPolicy)

	id, err := attributed.AddEdge(0, 1, graph.NewEdgeAttrs([]float64{7}))
	require.NoError(t, err)
	e, err := attributed.Edge(id)
	require.NoError(t, err)
	require.NotNil(t, e.Attrs)
	assert.Equal(t, graph.EdgeDim, e.Attrs.Dim)
	assert.Equal(t, []float64{7}, e.Attrs.Features)
}

func TestGraph_LoopsAndMultiEdges(t *testing.T) {
	g := graph.New(graph.WithLoops(), graph.WithMultiEdges())
	g.AddNode(graph.NewNodeAttrs(nil))
	g.AddNode(graph.NewNodeAttrs(nil))

	_, err := g.AddEdge(0, 0, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, nil)
	require.NoError(t, err)

	assert.Len(t, g.EdgesBetween(0, 1), 2)
	assert.Len(t, g.EdgesBetween(1, 0), 2)
	assert.Len(t, g.EdgesBetween(0, 0), 1)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, nbrs)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "loop counts twice plus two parallel edges")
}

func TestGraph_Queries(t *testing.T) {
	g := triangle(t)

	assert.True(t, g.HasEdge(2, 0))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 9))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbrs)

	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, graph.NodeDim, n.Dim)
	assert.Equal(t, []float64{2}, n.Features)

	_, err = g.Node(3)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.Edge(3)
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
	_, err = g.Neighbors(-1)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
		assert.Nil(t, e.Attrs)
	}
	assert.Equal(t, 0, edges[2].Other(2))
	assert.Equal(t, 2, edges[2].Other(0))
}
