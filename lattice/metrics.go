// SPDX-License-Identifier: MIT

package lattice

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors updated by Build.
// A single Metrics may be shared by concurrent builds.
type Metrics struct {
	// Builds counts finished builds by method and outcome ("ok" or "error").
	Builds *prometheus.CounterVec
	// Closures counts closure evaluations (singletons and pairwise candidates).
	Closures prometheus.Counter
	// Duplicates counts candidates whose extent was already registered.
	Duplicates prometheus.Counter
	// Concepts holds the concept count of the most recent successful build.
	Concepts prometheus.Gauge
	// Duration observes wall time per build in seconds.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kfca",
			Subsystem: "lattice",
			Name:      "builds_total",
			Help:      "Concept lattice builds by method and outcome.",
		}, []string{"method", "outcome"}),
		Closures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kfca",
			Subsystem: "lattice",
			Name:      "closures_total",
			Help:      "Closure evaluations performed during enumeration.",
		}),
		Duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kfca",
			Subsystem: "lattice",
			Name:      "duplicate_candidates_total",
			Help:      "Candidates discarded because their extent was already known.",
		}),
		Concepts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "kfca",
			Subsystem: "lattice",
			Name:      "concepts",
			Help:      "Concept count of the most recent successful build.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kfca",
			Subsystem: "lattice",
			Name:      "build_duration_seconds",
			Help:      "Wall time of concept lattice builds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Builds, m.Closures, m.Duplicates, m.Concepts, m.Duration)
	}

	return m
}

// The helpers below are nil-safe so the builder never branches on metrics.

func (m *Metrics) closure() {
	if m != nil {
		m.Closures.Inc()
	}
}

func (m *Metrics) duplicate() {
	if m != nil {
		m.Duplicates.Inc()
	}
}

func (m *Metrics) finish(method Method, start time.Time, concepts int, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	} else {
		m.Concepts.Set(float64(concepts))
	}
	m.Builds.WithLabelValues(method.String(), outcome).Inc()
	m.Duration.Observe(time.Since(start).Seconds())
}
