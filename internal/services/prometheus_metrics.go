package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	filesProcessed *prometheus.CounterVec
	filesRejected  prometheus.Counter
	rowsBySource   *prometheus.CounterVec
	batchDuration  prometheus.Histogram
	bulkApprovals  prometheus.Counter
	reviewQueue    *prometheus.GaugeVec
	apiErrors      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		filesProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_files_processed_total",
				Help: "Total number of import files committed",
			},
			[]string{"source"},
		),
		filesRejected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "import_files_rejected_total",
				Help: "Total number of import files rejected as non-tabular",
			},
		),
		rowsBySource: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total imported, skipped and flagged rows by source",
			},
			[]string{"source", "outcome"},
		),
		batchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_batch_duration_milliseconds",
				Help:    "Import batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		bulkApprovals: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "review_bulk_approvals_total",
				Help: "Total number of bulk approve operations",
			},
		),
		reviewQueue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "review_queue_depth",
				Help: "Current number of transactions by review status",
			},
			[]string{"status"},
		),
		apiErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "import.file.processed":
		m.filesProcessed.WithLabelValues(tags["source"]).Inc()
	case "import.file.rejected":
		m.filesRejected.Inc()
	case "review.bulk_approve":
		m.bulkApprovals.Inc()
	case "api.error":
		if code := tags["code"]; code != "" {
			m.apiErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import.batch":
		m.batchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "import.rows.imported":
		m.rowsBySource.WithLabelValues(tags["source"], "imported").Add(value)
	case "import.rows.skipped":
		m.rowsBySource.WithLabelValues(tags["source"], "skipped").Add(value)
	case "import.rows.flagged":
		m.rowsBySource.WithLabelValues(tags["source"], "flagged").Add(value)
	case "review.queue.pending", "review.queue.flagged":
		if status := tags["status"]; status != "" {
			m.reviewQueue.WithLabelValues(status).Set(value)
		}
	}
}

// NoopMetrics satisfies MetricsRecorderInterface for tests and the CLI,
// where a registry would only get in the way.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) IncrementCounter(name string, tags map[string]string) {}

func (m *NoopMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
