// Package metrics exposes prometheus collectors for the chunk driver.
// Grounded on ajitpratap0-nebula's pkg/metrics/metrics.go: a
// single-registry struct of pre-declared vectors, constructed once per
// process and passed down to whatever needs to observe it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the counters and histograms the chunk driver
// updates as it works through a source. ParseErrors is registered
// with the rest, but the chunk driver does not increment it.
type Collector struct {
	ChunksRead      prometheus.Counter
	RowsParsed      prometheus.Counter
	BytesRead       prometheus.Counter
	ParseErrors     *prometheus.CounterVec
	ChunkDuration   prometheus.Histogram
	ColumnsWidened  prometheus.Counter
}

// New creates a Collector and registers it against reg. Passing a
// fresh prometheus.NewRegistry() keeps tests hermetic; the CLI does
// the same and serves that registry on --metrics-addr.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ChunksRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dlm",
			Name:      "chunks_read_total",
			Help:      "Number of chunks pulled from the source.",
		}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dlm",
			Name:      "rows_parsed_total",
			Help:      "Number of data rows successfully parsed.",
		}),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dlm",
			Name:      "bytes_read_total",
			Help:      "Number of raw bytes pulled from the source.",
		}),
		ParseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dlm",
			Name:      "parse_errors_total",
			Help:      "Number of parse errors by kind.",
		}, []string{"kind"}),
		ChunkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dlm",
			Name:      "chunk_duration_seconds",
			Help:      "Wall time spent processing one chunk end to end.",
			Buckets:   prometheus.DefBuckets,
		}),
		ColumnsWidened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dlm",
			Name:      "columns_widened_total",
			Help:      "Number of cross-chunk column type widenings.",
		}),
	}
	reg.MustRegister(c.ChunksRead, c.RowsParsed, c.BytesRead, c.ParseErrors, c.ChunkDuration, c.ColumnsWidened)
	return c
}
