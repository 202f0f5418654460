package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solvr_solves_total",
		Help: "Solve requests by method and outcome.",
	}, []string{"method", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "solvr_solve_duration_seconds",
		Help:    "Latency of individual solver runs.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
	}, []string{"method"})
)

// outcomeLabel maps a solve outcome onto the metric label set.
func outcomeLabel(converged bool) string {
	if converged {
		return "converged"
	}
	return "degraded"
}
