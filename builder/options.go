// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes fixture generation.
type BuilderOption func(*builderConfig)

// WithFeatureDim sets the number of node feature columns. Panics on d < 1.
func WithFeatureDim(d int) BuilderOption {
	if d < 1 {
		panic("builder: WithFeatureDim(d<1)")
	}
	return func(c *builderConfig) { c.featureDim = d }
}

// WithRand provides an explicit RNG for features and stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeAttrs emits a one-column edge_attr aligned with edge_index.
func WithEdgeAttrs() BuilderOption {
	return func(c *builderConfig) { c.edgeAttrs = true }
}

// WithEdgeAttrFn overrides the edge-attribute generator; it receives the
// (possibly nil) RNG and the ordinal of the undirected edge. Panics on nil.
func WithEdgeAttrFn(fn func(rng *rand.Rand, ordinal int) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeAttrFn(nil)")
	}
	return func(c *builderConfig) { c.attrFn = fn }
}

// WithSymmetric emits every undirected edge in both directions, the layout
// of most graph learning datasets.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}
