// SPDX-License-Identifier: MIT

// Package builder produces deterministic synthetic data.Record fixtures:
// classic graph topologies (cycle, path, complete, star, wheel, random
// sparse) carrying node features, an edge_index and optional edge_attr.
//
// Fixtures compose: BuildRecord applies constructors in order over one
// shared node set, so Cycle(4) followed by Star(6) yields a cycle with a
// hub attached. Duplicate undirected pairs are emitted once.
//
// Node features default to row i = [i, i, ...]; WithSeed or WithRand draws
// them from the RNG instead. Edge attributes (WithEdgeAttrs) are taken from
// the edge-attribute generator, shared by both directions under
// WithSymmetric.
package builder
