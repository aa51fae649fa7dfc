// SPDX-License-Identifier: MIT
//
// File: build_graph.go
// Role: Graph-reconstruction helper for Graph-domain liftings.
// Determinism:
//   - Nodes follow x row order; edges follow edge_index column order, or
//     (src,dst) order after symmetrization.
// AI-HINT (file):
//   - Multi-edge policy: simple by default (first entry of a pair wins);
//     pass graph.WithMultiEdges() to keep every directed entry.
//   - Self-loops are always kept.

package lifting

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/graph"
	"github.com/katalvlaran/topolift/tensor"
)

// BuildGraph converts rec's x / edge_index (and edge_attr when
// preserveEdgeAttr is set and present) into an undirected graph.
//
// Steps:
//  1. One node per row of x, tagged graph.NodeDim.
//  2. If carrying attributes: check edge_attr alignment (ErrShapeMismatch),
//     symmetrize the edge set (ErrEdgeAttrConflict on disagreement).
//  3. Add one edge per directed entry, collapsing pairs already present
//     unless the graph is a multigraph.
//
// Endpoints outside [0, rows(x)) fail with graph.ErrVertexNotFound.
func BuildGraph(rec *data.Record, preserveEdgeAttr bool, opts ...graph.Option) (*graph.Graph, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	x, err := rec.X()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	ei, err := rec.EdgeIndex()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	carry := preserveEdgeAttr && rec.HasEdgeAttr()
	var attr *tensor.Dense
	if carry {
		if attr, err = rec.EdgeAttr(); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		if ei, attr, err = Symmetrize(ei, attr); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	gopts := []graph.Option{graph.WithLoops()}
	if carry {
		gopts = append(gopts, graph.WithEdgeAttrs())
	}
	g := graph.New(append(gopts, opts...)...)

	for i := 0; i < x.Rows(); i++ {
		row, _ := x.Row(i)
		g.AddNode(graph.NewNodeAttrs(row))
	}

	for k := 0; k < ei.Len(); k++ {
		u, v := ei.Pair(k)
		if !g.Multigraph() && g.HasEdge(u, v) {
			continue
		}
		var ea *graph.EdgeAttrs
		if carry {
			row, _ := attr.Row(k)
			ea = graph.NewEdgeAttrs(row)
		}
		if _, err = g.AddEdge(u, v, ea); err != nil {
			return nil, fmt.Errorf("BuildGraph: edge %d: %w", k, err)
		}
	}

	return g, nil
}

// IsUndirected reports whether every (i,j) in ei has a matching (j,i)
// with identical attributes. attr may be nil to compare structure only.
// Returns ErrShapeMismatch for misaligned attr and ErrEdgeAttrConflict
// when two entries of the same unordered pair disagree.
func IsUndirected(ei tensor.EdgeIndex, attr *tensor.Dense) (bool, error) {
	seen, err := indexPairs(ei, attr)
	if err != nil {
		return false, err
	}
	for k := 0; k < ei.Len(); k++ {
		u, v := ei.Pair(k)
		if _, ok := seen[[2]int{v, u}]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// Symmetrize returns an edge set in which every (i,j) has a matching (j,i)
// carrying the same attribute row. An already symmetric input is returned
// unchanged; otherwise missing reverse entries are synthesized with
// duplicated attributes and the result is sorted by (src,dst).
func Symmetrize(ei tensor.EdgeIndex, attr *tensor.Dense) (tensor.EdgeIndex, *tensor.Dense, error) {
	seen, err := indexPairs(ei, attr)
	if err != nil {
		return tensor.EdgeIndex{}, nil, err
	}

	type entry struct {
		u, v int
		row  int
	}
	entries := make([]entry, 0, 2*ei.Len())
	added := false
	for k := 0; k < ei.Len(); k++ {
		u, v := ei.Pair(k)
		entries = append(entries, entry{u, v, k})
	}
	for k := 0; k < ei.Len(); k++ {
		u, v := ei.Pair(k)
		rev := [2]int{v, u}
		if _, ok := seen[rev]; ok {
			continue
		}
		seen[rev] = k
		entries = append(entries, entry{v, u, k})
		added = true
	}
	if !added {
		return ei, attr, nil
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].u != entries[b].u {
			return entries[a].u < entries[b].u
		}
		return entries[a].v < entries[b].v
	})
	pairs := make([][2]int, len(entries))
	var rows [][]float64
	if attr != nil {
		rows = make([][]float64, len(entries))
	}
	for i, e := range entries {
		pairs[i] = [2]int{e.u, e.v}
		if attr != nil {
			rows[i], _ = attr.Row(e.row)
		}
	}
	if attr == nil {
		return tensor.EdgeIndexFromPairs(pairs), nil, nil
	}
	out, err := tensor.FromRows(rows)
	if err != nil {
		return tensor.EdgeIndex{}, nil, fmt.Errorf("Symmetrize: %w", err)
	}

	return tensor.EdgeIndexFromPairs(pairs), out, nil
}

// indexPairs maps each directed pair to its first attribute row and checks
// that every entry of an unordered pair carries the same attributes.
func indexPairs(ei tensor.EdgeIndex, attr *tensor.Dense) (map[[2]int]int, error) {
	if attr != nil && attr.Rows() != ei.Len() {
		return nil, fmt.Errorf("edge_attr has %d rows for %d edges: %w", attr.Rows(), ei.Len(), ErrShapeMismatch)
	}
	seen := make(map[[2]int]int, ei.Len())
	canon := make(map[[2]int]int, ei.Len())
	for k := 0; k < ei.Len(); k++ {
		u, v := ei.Pair(k)
		if _, ok := seen[[2]int{u, v}]; !ok {
			seen[[2]int{u, v}] = k
		}
		if attr == nil {
			continue
		}
		key := [2]int{min(u, v), max(u, v)}
		first, ok := canon[key]
		if !ok {
			canon[key] = k
			continue
		}
		a, _ := attr.Row(first)
		b, _ := attr.Row(k)
		if !slices.Equal(a, b) {
			return nil, fmt.Errorf("edges %d and %d join (%d,%d): %w", first, k, u, v, ErrEdgeAttrConflict)
		}
	}

	return seen, nil
}
