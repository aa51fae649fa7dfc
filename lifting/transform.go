// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: The generic four-step pipeline composing a Lifting with a Strategy.
// Determinism:
//   - Apply is a pure function of its input and the Transform's configuration.
// Concurrency:
//   - A Transform is immutable after New and may be shared across goroutines.

package lifting

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/topology"
)

// Transform applies one topology builder and one feature strategy.
type Transform struct {
	lifting  Lifting
	strategy feature.Strategy
	name     feature.Name
	params   Params
	logger   *zap.Logger
	recorder Recorder
}

// New validates cfg against l's domain and resolves the feature strategy.
//
// Steps:
//  1. Reject a nil Lifting (ErrNilLifting).
//  2. Reject preserve_edge_attr outside the Graph domain (ErrUnknownOption).
//  3. Resolve feature_lifting, falling back to the domain default
//     (feature.ErrUnknownStrategy for unregistered names).
func New(l Lifting, cfg Config, opts ...Option) (*Transform, error) {
	if l == nil {
		return nil, ErrNilLifting
	}
	d := l.Domain()
	if cfg.PreserveEdgeAttr && d != Graph {
		return nil, fmt.Errorf("New(%s): %s: %w", d, KeyPreserveEdgeAttr, ErrUnknownOption)
	}
	name := cfg.featureLifting(d)
	strategy, err := feature.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("New(%s): %w", d, err)
	}

	tc := defaultTransformConfig()
	for _, opt := range opts {
		opt(&tc)
	}

	return &Transform{
		lifting:  l,
		strategy: strategy,
		name:     name,
		params:   Params{PreserveEdgeAttr: cfg.PreserveEdgeAttr},
		logger:   tc.logger.With(zap.String("domain", d.String()), zap.String("strategy", name.String())),
		recorder: tc.recorder,
	}, nil
}

// Domain returns the source domain of the underlying Lifting.
func (t *Transform) Domain() Domain { return t.lifting.Domain() }

// FeatureLifting returns the resolved strategy name.
func (t *Transform) FeatureLifting() feature.Name { return t.name }

// Params returns the construction-time parameters passed to LiftTopology.
func (t *Transform) Params() Params { return t.params }

// Apply lifts rec and returns a new record; rec is not modified.
// Every input field survives unless the descriptor supplies the same key.
// On error no record is returned.
func (t *Transform) Apply(rec *data.Record) (*data.Record, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	start := time.Now()

	// 1) Snapshot.
	fields := rec.ToDict()

	// 2) Topology.
	topo, err := t.lifting.LiftTopology(rec, t.params)
	if err != nil {
		return nil, t.fail(start, fmt.Errorf("Apply(%s): %w", t.Domain(), err))
	}

	// 3) Features.
	enriched, err := t.strategy.Enrich(topo)
	if err != nil {
		return nil, t.fail(start, fmt.Errorf("Apply(%s): enrich %s: %w", t.Domain(), t.name, err))
	}

	// 4) Merge, descriptor precedence.
	for k, v := range enriched {
		fields[k] = v
	}
	out := data.FromDict(fields)

	elapsed := time.Since(start)
	t.logger.Debug("lifting applied",
		zap.Int("fields_in", rec.Len()),
		zap.Int("fields_out", out.Len()),
		zap.Strings("descriptor_keys", enriched.Keys()),
		zap.Duration("elapsed", elapsed),
	)
	t.observe(elapsed, enriched, nil)

	return out, nil
}

// fail logs and records err, then returns it unchanged.
func (t *Transform) fail(start time.Time, err error) error {
	t.logger.Warn("lifting failed", zap.Error(err))
	t.observe(time.Since(start), nil, err)

	return err
}

func (t *Transform) observe(elapsed time.Duration, topo topology.Descriptor, err error) {
	if t.recorder == nil {
		return
	}
	t.recorder.ObserveLifting(t.Domain().String(), t.name.String(), elapsed, topo, err)
}
