// Package bfs provides breadth-first search over a graph.Graph, returning
// hop distances, parent links and visit order from a start node.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → hop distance from start
//   - Parent: node → predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering and a
//     MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	The k-hop hypergraph lifting needs, for every node, the set of nodes
//	within k hops; Within(g, start, k) is that query.
//
// Determinism
//
//	graph.Neighbors returns ascending indices and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log Δ)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
