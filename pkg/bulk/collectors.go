package bulk

import "github.com/prometheus/client_golang/prometheus"

// Collectors groups the Prometheus instruments the writer updates during
// a run. A nil *Collectors disables instrumentation entirely.
type Collectors struct {
	// DocumentsWritten counts documents the service accepted.
	DocumentsWritten prometheus.Counter

	// DocumentsFailed counts documents still failing after retries were
	// exhausted.
	DocumentsFailed prometheus.Counter

	// DocumentsCancelled counts documents given up on due to
	// non-retryable errors.
	DocumentsCancelled prometheus.Counter

	// RetryPasses counts dispatched write passes across all runs.
	RetryPasses prometheus.Counter

	// ChunkSize reports the chunk size of the most recent pass.
	ChunkSize prometheus.Gauge
}

// NewCollectors creates and registers the bulk-write instruments on the
// given registerer.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		DocumentsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vecdb_bulk_documents_written_total",
			Help: "Documents accepted by the service across all bulk writes.",
		}),
		DocumentsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vecdb_bulk_documents_failed_total",
			Help: "Documents that exhausted their retries without being written.",
		}),
		DocumentsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vecdb_bulk_documents_cancelled_total",
			Help: "Documents cancelled after a non-retryable service error.",
		}),
		RetryPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vecdb_bulk_retry_passes_total",
			Help: "Write passes dispatched, including the first pass of every run.",
		}),
		ChunkSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vecdb_bulk_chunk_size",
			Help: "Documents per chunk in the most recent write pass.",
		}),
	}

	reg.MustRegister(
		c.DocumentsWritten,
		c.DocumentsFailed,
		c.DocumentsCancelled,
		c.RetryPasses,
		c.ChunkSize,
	)
	return c
}
