// Package metrics provides application-level observability primitives:
// Prometheus counters for the batch solver and runtime memory snapshots.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for solver-level observability.
// Registered once globally to avoid duplicate registration errors.
var (
	queriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eulerbatch_queries_total",
		Help: "Total number of queries received across all batches",
	})
	computationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eulerbatch_computations_total",
		Help: "Total number of closed-form evaluations performed",
	})
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eulerbatch_cache_hits_total",
		Help: "Total number of queries answered from the batch result cache",
	})
	batchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eulerbatch_batches_total",
		Help: "Total number of batches solved",
	})
)

// SolverMetrics records batch solver activity. The zero value is not usable;
// obtain an instance from NewSolverMetrics.
type SolverMetrics struct{}

// NewSolverMetrics creates a new solver metrics recorder.
func NewSolverMetrics() *SolverMetrics {
	return &SolverMetrics{}
}

// ObserveBatch records the outcome of one solved batch.
//
// Parameters:
//   - queries: The total number of queries in the batch.
//   - unique: The number of distinct bounds actually computed.
func (m *SolverMetrics) ObserveBatch(queries, unique int) {
	batchesTotal.Inc()
	queriesTotal.Add(float64(queries))
	computationsTotal.Add(float64(unique))
	cacheHitsTotal.Add(float64(queries - unique))
}
