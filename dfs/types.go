// Package dfs defines types and options for depth-first search traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, runs DFS from every unvisited node in
	// ascending order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth maps each node to its tree depth; roots have depth 0.
	Depth map[int]int

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[int]int

	// Roots lists the root of every DFS tree in discovery order.
	Roots []int
}
