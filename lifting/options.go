// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options carrying ambient dependencies into a Transform.
// Contract:
//   - Option constructors validate and panic on nil inputs.
//   - Defaults: zap.NewNop() logger, no recorder.

package lifting

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/topolift/topology"
)

// Recorder receives one observation per Apply call.
// topo is nil when the call failed.
type Recorder interface {
	ObserveLifting(domain, strategy string, elapsed time.Duration, topo topology.Descriptor, err error)
}

// Option customizes a Transform at construction.
type Option func(*transformConfig)

type transformConfig struct {
	logger   *zap.Logger
	recorder Recorder
}

func defaultTransformConfig() transformConfig {
	return transformConfig{logger: zap.NewNop()}
}

// WithLogger sets the logger used for per-call Debug and failure Warn records.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lifting: WithLogger(nil)")
	}
	return func(c *transformConfig) { c.logger = l }
}

// WithMetrics installs a Recorder, typically a *metrics.Collector.
// Panics on nil.
func WithMetrics(r Recorder) Option {
	if r == nil {
		panic("lifting: WithMetrics(nil)")
	}
	return func(c *transformConfig) { c.recorder = r }
}
