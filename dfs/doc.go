// Package dfs implements depth-first traversal and cycle bases on graph.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or, with WithFullTraversal,
//     the whole forest (every connected component, roots in ascending order).
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts.
//   - MaxDepth limit and context cancellation.
//   - CycleBasis(g): one fundamental cycle per non-tree edge of the DFS
//     spanning forest, the 2-cells of the cycle cell-complex lifting.
//
// Complexity:
//
//   - DFS:        O(V + E log Δ) time, O(V) memory.
//   - CycleBasis: O(V + E·h) time, h = spanning-tree height.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
