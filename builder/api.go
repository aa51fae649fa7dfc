// SPDX-License-Identifier: MIT
// Package: topolift/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRecord(bopts, cons...). Resolves cfg, runs cons in order
//     over a shared sketch, then materializes x / edge_index / edge_attr.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical records.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/tensor"
)

// Constructor adds nodes and undirected edges to a sketch.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch accumulates a simple undirected topology before materialization.
type sketch struct {
	nodes int
	edges [][2]int
	seen  map[[2]int]struct{}
}

// grow ensures nodes 0..n-1 exist.
func (s *sketch) grow(n int) {
	if n > s.nodes {
		s.nodes = n
	}
}

// link records the undirected pair (u,v) once, in the orientation given.
func (s *sketch) link(u, v int) {
	key := [2]int{min(u, v), max(u, v)}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.edges = append(s.edges, [2]int{u, v})
}

// BuildRecord resolves bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildRecord: %w".
func BuildRecord(bopts []BuilderOption, cons ...Constructor) (*data.Record, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{seen: make(map[[2]int]struct{})}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRecord: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildRecord: %w", err)
		}
	}

	return materialize(s, cfg)
}

// Record is BuildRecord for a single constructor.
func Record(con Constructor, bopts ...BuilderOption) (*data.Record, error) {
	return BuildRecord(bopts, con)
}

// materialize turns the sketch into x / edge_index (/ edge_attr).
func materialize(s *sketch, cfg builderConfig) (*data.Record, error) {
	x, err := tensor.NewDense(s.nodes, cfg.featureDim)
	if err != nil {
		return nil, fmt.Errorf("BuildRecord: %w", err)
	}
	for i := 0; i < s.nodes; i++ {
		for j := 0; j < cfg.featureDim; j++ {
			v := float64(i)
			if cfg.rng != nil {
				v = cfg.rng.Float64()
			}
			_ = x.Set(i, j, v)
		}
	}

	var pairs [][2]int
	var attrs [][]float64
	for k, e := range s.edges {
		a := []float64{cfg.attrFn(cfg.rng, k)}
		pairs = append(pairs, e)
		attrs = append(attrs, a)
		if cfg.symmetric && e[0] != e[1] {
			pairs = append(pairs, [2]int{e[1], e[0]})
			attrs = append(attrs, a)
		}
	}

	rec := data.New()
	rec.Set(data.KeyX, x)
	rec.Set(data.KeyEdgeIndex, tensor.EdgeIndexFromPairs(pairs))
	if cfg.edgeAttrs {
		ea, err := tensor.NewDense(len(attrs), 1)
		if err != nil {
			return nil, fmt.Errorf("BuildRecord: %w", err)
		}
		for k, a := range attrs {
			_ = ea.Set(k, 0, a[0])
		}
		rec.Set(data.KeyEdgeAttr, ea)
	}

	return rec, nil
}

// kinds maps fixture names to single-parameter constructors.
var kinds = map[string]func(n int) Constructor{
	"complete": Complete,
	"cycle":    Cycle,
	"path":     Path,
	"star":     Star,
	"wheel":    Wheel,
}

// ByKind returns the constructor named kind with size n.
func ByKind(kind string, n int) (Constructor, error) {
	fn, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("ByKind(%q): %w", kind, ErrConstructFailed)
	}

	return fn(n), nil
}

// Kinds lists the names accepted by ByKind in ascending order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
