// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • featureDim = 1
//   • rng        = nil      (features are index-valued unless seeded)
//   • edgeAttrs  = false
//   • symmetric  = false    (each undirected pair emitted once, u→v as built)
//   • attrFn     = edge ordinal + 1

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	featureDim int
	rng        *rand.Rand
	edgeAttrs  bool
	symmetric  bool
	attrFn     func(rng *rand.Rand, ordinal int) float64
}

const defaultFeatureDim = 1

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		featureDim: defaultFeatureDim,
		attrFn:     ordinalAttr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ordinalAttr labels the k-th undirected edge with k+1.
func ordinalAttr(_ *rand.Rand, ordinal int) float64 { return float64(ordinal + 1) }
