package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/topolift/bfs"
	"github.com/katalvlaran/topolift/graph"
)

// pathGraph builds 0-1-2-...-(n-1).
func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(graph.NewNodeAttrs(nil))
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.AddEdge(i, i+1, nil); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := graph.New()
	if _, err := bfs.BFS(g, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddNode(graph.NewNodeAttrs(nil))
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Within(g, 0, -2); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative k: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OrderAndDepth covers a simple path.
func TestBFS_OrderAndDepth(t *testing.T) {
	g := pathGraph(t, 4)
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 0, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[3]; d != 2 {
		t.Errorf("Depth[3] = %d; want 2", d)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
}

// TestWithin checks hop-limited neighborhoods.
func TestWithin(t *testing.T) {
	g := pathGraph(t, 5)
	tests := []struct {
		start, k int
		want     []int
	}{
		{2, 0, []int{2}},
		{2, 1, []int{1, 2, 3}},
		{0, 2, []int{0, 1, 2}},
		{4, 10, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := bfs.Within(g, tt.start, tt.k)
		if err != nil {
			t.Fatalf("Within(%d,%d): %v", tt.start, tt.k, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Within(%d,%d) = %v; want %v", tt.start, tt.k, got, tt.want)
		}
	}
}

// TestBFS_HooksAndCancellation covers OnVisit aborts, filtering and ctx.
func TestBFS_HooksAndCancellation(t *testing.T) {
	g := pathGraph(t, 4)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want stop, got %v", err)
	}

	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
