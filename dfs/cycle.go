// Package dfs: fundamental cycle basis of an undirected graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/topolift/graph"
)

// CycleBasis returns one fundamental cycle per non-tree edge of the DFS
// spanning forest of g. Each cycle lists its nodes in traversal order,
// rotated to start at its smallest node and oriented so that the second
// node is smaller than the last.
//
// The basis treats g as simple: self-loops and parallel copies of an edge
// do not produce cycles. Cycles appear in edge-ID order of their closing
// edge, so the result is deterministic for a given graph.
//
// Complexity: O(V + E·h), h = height of the spanning forest.
func CycleBasis(g *graph.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	forest, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("CycleBasis: %w", err)
	}

	seen := make(map[[2]int]bool, g.EdgeCount())
	var cycles [][]int
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if u == v {
			continue
		}
		key := [2]int{min(u, v), max(u, v)}
		if seen[key] {
			continue
		}
		seen[key] = true
		if isTreeEdge(forest, u, v) {
			continue
		}
		cycles = append(cycles, canonicalCycle(treeCycle(forest, u, v)))
	}

	return cycles, nil
}

// isTreeEdge reports whether (u,v) is a parent link of the forest.
func isTreeEdge(f *Result, u, v int) bool {
	if p, ok := f.Parent[v]; ok && p == u {
		return true
	}
	if p, ok := f.Parent[u]; ok && p == v {
		return true
	}

	return false
}

// treeCycle closes the non-tree edge (u,v) through the tree paths to their
// lowest common ancestor: u → ... → lca → ... → v.
func treeCycle(f *Result, u, v int) []int {
	var up, down []int
	a, b := u, v
	for f.Depth[a] > f.Depth[b] {
		up = append(up, a)
		a = f.Parent[a]
	}
	for f.Depth[b] > f.Depth[a] {
		down = append(down, b)
		b = f.Parent[b]
	}
	for a != b {
		up = append(up, a)
		down = append(down, b)
		a, b = f.Parent[a], f.Parent[b]
	}
	cycle := append(up, a)
	for i := len(down) - 1; i >= 0; i-- {
		cycle = append(cycle, down[i])
	}

	return cycle
}

// canonicalCycle rotates c to start at its minimum and fixes orientation.
func canonicalCycle(c []int) []int {
	n := len(c)
	lo := 0
	for i := 1; i < n; i++ {
		if c[i] < c[lo] {
			lo = i
		}
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = c[(lo+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}
