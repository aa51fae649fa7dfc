package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolift/dfs"
	"github.com/katalvlaran/topolift/graph"
)

// build returns a graph with n nodes and the given edges.
func build(t *testing.T, n int, edges [][2]int, opts ...graph.Option) *graph.Graph {
	t.Helper()
	g := graph.New(opts...)
	for i := 0; i < n; i++ {
		g.AddNode(graph.NewNodeAttrs(nil))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], nil)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(graph.New(), 0)
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.CycleBasis(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_PostOrderAndParents(t *testing.T) {
	// 0-1, 0-2, 1-3
	g := build(t, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{0}, res.Roots)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1}, res.Parent)
	assert.Equal(t, 2, res.Depth[3])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {3, 4}})
	res, err := dfs.DFS(g, 99, dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3}, res.Roots)
	assert.Len(t, res.Order, 5)
}

func TestDFS_MaxDepthAndHooks(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, res.Order)

	var visits, exits []int
	_, err = dfs.DFS(g, 0,
		dfs.WithOnVisit(func(id int) error { visits = append(visits, id); return nil }),
		dfs.WithOnExit(func(id int) error { exits = append(exits, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, visits)
	assert.Equal(t, []int{3, 2, 1, 0}, exits)

	stop := errors.New("stop")
	_, err = dfs.DFS(g, 0, dfs.WithOnVisit(func(id int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, 0, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCycleBasis(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		opts  []graph.Option
		want  [][]int
	}{
		{"tree", 4, [][2]int{{0, 1}, {1, 2}, {1, 3}}, nil, nil},
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, nil, [][]int{{0, 1, 2}}},
		{"square", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, nil, [][]int{{0, 1, 2, 3}}},
		{
			"two triangles sharing an edge", 4,
			[][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 2}}, nil,
			[][]int{{0, 1, 2}, {1, 2, 3}},
		},
		{
			"loops and parallel edges ignored", 3,
			[][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 2}}, []graph.Option{graph.WithLoops(), graph.WithMultiEdges()},
			nil,
		},
		{
			"disconnected cycles", 6,
			[][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}, nil,
			[][]int{{0, 1, 2}, {3, 4, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.n, tt.edges, tt.opts...)
			got, err := dfs.CycleBasis(g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCycleBasis_Rank checks |basis| = E - V + C on a wheel graph.
func TestCycleBasis_Rank(t *testing.T) {
	edges := [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}}
	for i := 1; i <= 5; i++ {
		edges = append(edges, [2]int{0, i})
	}
	g := build(t, 6, edges)
	got, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Len(t, got, 10-6+1)
	for _, c := range got {
		assert.Less(t, c[1], c[len(c)-1], "orientation of %v", c)
		for _, v := range c[1:] {
			assert.Greater(t, v, c[0], "rotation of %v", c)
		}
	}
}
