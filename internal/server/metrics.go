// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome label for successful lookups. Failures use the error kind name.
const outcomeOK = "ok"

// Metrics holds the lookup collectors exposed on /metrics.
type Metrics struct {
	Lookups  *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_lookups_total",
				Help: "Number of restaurant lookups served, by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "restaurant_lookup_duration_seconds",
				Help:    "Time spent resolving a restaurant lookup",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(
		m.Lookups,
		m.Duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) observe(outcome string, start time.Time) {
	m.Lookups.WithLabelValues(outcome).Inc()
	m.Duration.Observe(time.Since(start).Seconds())
}
