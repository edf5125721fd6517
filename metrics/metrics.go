// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus instrumentation of world operations.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Collector holds the metrics recorded by a world.
type Collector struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	Territories prometheus.Gauge
	Actors      prometheus.Gauge
	Alliances   prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewCollector registers the metrics with reg. A nil reg gets a private
// registry, reachable through Gatherer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{}
	if reg == nil {
		r := prometheus.NewRegistry()
		reg, c.gatherer = r, r
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}
	f := promauto.With(reg)

	c.OperationsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conquest_operations_total",
			Help: "Total number of world operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
	c.OperationDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conquest_operation_duration_seconds",
			Help:    "World operation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"operation"},
	)
	c.Territories = f.NewGauge(prometheus.GaugeOpts{
		Name: "conquest_territories",
		Help: "Number of territories in the world",
	})
	c.Actors = f.NewGauge(prometheus.GaugeOpts{
		Name: "conquest_actors",
		Help: "Number of actors in the world",
	})
	c.Alliances = f.NewGauge(prometheus.GaugeOpts{
		Name: "conquest_alliances",
		Help: "Number of alliances in the world",
	})

	return c
}

// Gatherer returns the registry the collector was registered with, or nil
// when the Registerer passed to NewCollector cannot be gathered.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.gatherer }

// Record counts one operation with its outcome and observes its duration.
// A nil collector records nothing.
func (c *Collector) Record(operation, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	c.OperationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// SetSizes updates the world size gauges.
func (c *Collector) SetSizes(territories, actors, alliances int) {
	if c == nil {
		return
	}
	c.Territories.Set(float64(territories))
	c.Actors.Set(float64(actors))
	c.Alliances.Set(float64(alliances))
}
