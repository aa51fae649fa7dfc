// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus metrics for lifting calls.
//
// A *Collector satisfies lifting.Recorder and is installed with
// lifting.WithMetrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/topolift/topology"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Collector holds the lifting metric vectors.
type Collector struct {
	callsTotal *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cells      *prometheus.GaugeVec
}

// NewCollector registers the lifting metrics under namespace with reg.
// A nil reg registers nothing, which suits tests that inspect vectors directly.
// Panics if the metrics are already registered with reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	c := &Collector{}

	c.callsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifting_calls_total",
			Help:      "Total number of lifting Apply calls",
		},
		[]string{"domain", "strategy", "status"},
	)

	c.duration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lifting_duration_seconds",
			Help:      "Lifting Apply duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"domain"},
	)

	c.cells = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lifting_cells",
			Help:      "Cells per incidence key in the last successful lifting",
		},
		[]string{"domain", "key"},
	)

	return c
}

// ObserveLifting implements lifting.Recorder.
// On success, lifting_cells is set to the column count (number of cells)
// of every incidence matrix in topo.
func (c *Collector) ObserveLifting(domain, strategy string, elapsed time.Duration, topo topology.Descriptor, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	c.callsTotal.WithLabelValues(domain, strategy, status).Inc()
	c.duration.WithLabelValues(domain).Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	for _, suffix := range topo.IncidenceSuffixes() {
		key := topology.IncidencePrefix + suffix
		m, derr := topo.Dense(key)
		if derr != nil {
			continue
		}
		c.cells.WithLabelValues(domain, key).Set(float64(m.Cols()))
	}
}
