// Package dfs implements depth-first search (single-source and forest) on graph.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/topolift/graph"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *graph.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. With WithFullTraversal every
// component is covered and start is ignored; otherwise only start's
// component is explored.
// Returns the partial Result and an error if aborted by context or hook.
func DFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		res.Roots = append(res.Roots, start)
		return res, w.traverse(start, 0)
	}
	for v := 0; v < n; v++ {
		if _, seen := res.Depth[v]; seen {
			continue
		}
		res.Roots = append(res.Roots, v)
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into unvisited neighbors.
func (w *walker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
		}
		for _, nid := range nbs {
			if _, seen := w.res.Depth[nid]; seen {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
