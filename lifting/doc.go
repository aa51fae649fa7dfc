// SPDX-License-Identifier: MIT

// Package lifting implements the generic lifting pipeline.
//
// A Transform composes one topology builder (a Lifting) with one
// feature-aggregation strategy resolved from the feature registry at
// construction. Apply runs four fixed steps:
//
//  1. snapshot the fields of the input record;
//  2. build a topology.Descriptor via Lifting.LiftTopology;
//  3. enrich the descriptor with the resolved feature.Strategy;
//  4. merge snapshot and descriptor into a new record, descriptor keys winning.
//
// Source domains form the closed set Domain. Every domain except Any
// defaults to the SumLifting strategy; Any defaults to identity.
//
// BuildGraph is the graph-domain helper that turns x / edge_index /
// edge_attr into a graph.Graph, optionally carrying edge attributes across
// both directions of every undirected edge.
//
// Configuration is an explicit Config struct (YAML via LoadConfig /
// ParseConfig); unknown keys are rejected. Ambient dependencies (logger,
// metrics recorder) are supplied with functional options.
package lifting
