// Package metrics holds the Prometheus collectors updated by the sampling
// entry points. They register with the default registry on first import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SampleCallsTotal counts completed calls by operation and strategy.
	SampleCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsample_calls_total",
			Help: "Total number of completed sampling calls",
		},
		[]string{"op", "strategy"},
	)

	// SampledEdgesTotal counts edges written to output subgraphs.
	SampledEdgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsample_sampled_edges_total",
			Help: "Total number of edges in returned subgraphs",
		},
		[]string{"op", "strategy"},
	)

	// SampleDuration measures end-to-end call latency including validation.
	SampleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphsample_duration_seconds",
			Help:    "Duration of sampling calls in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"op"},
	)

	// SampleErrorsTotal counts failed calls by error kind.
	SampleErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsample_errors_total",
			Help: "Total number of failed sampling calls",
		},
		[]string{"op", "kind"},
	)
)
