// Package bfs provides breadth-first search over a graph.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topolift/graph"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook error.
func BFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Within returns the nodes at most k hops from start, ascending, start included.
// k == 0 returns only start.
func Within(g *graph.Graph, start, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k cannot be negative (%d)", ErrOptionViolation, k)
	}
	if k == 0 {
		if g == nil {
			return nil, ErrGraphNil
		}
		if !g.HasNode(start) {
			return nil, fmt.Errorf("Within(%d): %w", start, ErrStartVertexNotFound)
		}
		return []int{start}, nil
	}
	res, err := BFS(g, start, WithMaxDepth(k))
	if err != nil {
		return nil, err
	}

	return res.Reached(), nil
}

// enqueue marks id visited at depth d, records its parent (-1 for root)
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
