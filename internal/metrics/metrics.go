// Package metrics registers the Prometheus instruments for the POS.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Checkouts counts checkout attempts, including ones declined because
	// no printer was selected.
	Checkouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Number of checkout attempts.",
	})

	// PrintJobs counts finished print jobs by outcome.
	PrintJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_print_jobs_total",
		Help: "Number of completed print jobs by status.",
	}, []string{"status"})

	// PrintDuration observes the wall time of the full transmit sequence,
	// including the post-cut hold.
	PrintDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_print_duration_seconds",
		Help:    "Duration of print transmissions.",
		Buckets: prometheus.DefBuckets,
	})
)
