// SPDX-License-Identifier: MIT

// Package batch fans one lifting out over many independent records.
//
// Records are processed by a bounded errgroup; the first failure cancels
// the remaining work and no partial output is returned. Output order
// matches input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topolift/data"
)

const instrumentationName = "github.com/katalvlaran/topolift/batch"

// ErrNilApplier is returned when no transform is supplied.
var ErrNilApplier = errors.New("batch: nil applier")

// Applier lifts a single record; *lifting.Transform implements it.
type Applier interface {
	Apply(rec *data.Record) (*data.Record, error)
}

// Option customizes Apply.
type Option func(*config)

type config struct {
	logger *zap.Logger
	tracer trace.Tracer
}

// WithLogger sets the logger for batch-level records. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithTracer overrides the global tracer. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("batch: WithTracer(nil)")
	}
	return func(c *config) { c.tracer = t }
}

// Apply lifts every record with a using at most workers goroutines
// (workers ≤ 0 selects GOMAXPROCS). The result has one entry per input,
// in input order. On error the result is nil.
func Apply(ctx context.Context, a Applier, records []*data.Record, workers int, opts ...Option) ([]*data.Record, error) {
	if a == nil {
		return nil, ErrNilApplier
	}
	cfg := config{logger: zap.NewNop(), tracer: otel.Tracer(instrumentationName)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := cfg.tracer.Start(ctx, "lifting.batch",
		trace.WithAttributes(
			attribute.Int("batch.records", len(records)),
			attribute.Int("batch.workers", workers),
		))
	defer span.End()

	out := make([]*data.Record, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lifted, err := a.Apply(rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = lifted

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		cfg.logger.Warn("batch lifting failed", zap.Int("records", len(records)), zap.Error(err))

		return nil, fmt.Errorf("batch.Apply: %w", err)
	}
	span.SetStatus(codes.Ok, "")
	cfg.logger.Debug("batch lifted", zap.Int("records", len(records)), zap.Int("workers", workers))

	return out, nil
}
