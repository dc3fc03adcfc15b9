package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsGenerated  *prometheus.CounterVec
	generationDuration   prometheus.Histogram
	persistenceRetries   *prometheus.CounterVec
	unbalancedLedgers    prometheus.Counter
	unclassifiedAccounts prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statementsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of statement generation outcomes by type and status",
			},
			[]string{"statement_type", "status"},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_duration_milliseconds",
				Help:    "Full generation pipeline duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		persistenceRetries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_persistence_retry_attempts_total",
				Help: "Total number of statement upsert retry attempts",
			},
			[]string{"statement_type"},
		),
		unbalancedLedgers: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "unbalanced_ledgers_total",
				Help: "Total number of generations performed on an unbalanced trial balance",
			},
		),
		unclassifiedAccounts: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "unclassified_account_codes",
				Help:    "Number of unclassified account codes seen per generation",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordStatementGenerated(statementType, status string) {
	m.statementsGenerated.WithLabelValues(statementType, status).Inc()
}

func (m *PrometheusMetrics) ObserveGenerationDuration(durationMs float64) {
	m.generationDuration.Observe(durationMs)
}

func (m *PrometheusMetrics) RecordPersistenceRetry(statementType string) {
	m.persistenceRetries.WithLabelValues(statementType).Inc()
}

func (m *PrometheusMetrics) RecordUnbalancedLedger() {
	m.unbalancedLedgers.Inc()
}

func (m *PrometheusMetrics) RecordUnclassifiedCodes(count int) {
	m.unclassifiedAccounts.Observe(float64(count))
}

// noopMetricsRecorder discards all observations. Used in tests.
type noopMetricsRecorder struct{}

func NewNoopMetricsRecorder() MetricsRecorderInterface {
	return &noopMetricsRecorder{}
}

func (noopMetricsRecorder) RecordStatementGenerated(statementType, status string) {}
func (noopMetricsRecorder) ObserveGenerationDuration(durationMs float64)          {}
func (noopMetricsRecorder) RecordPersistenceRetry(statementType string)           {}
func (noopMetricsRecorder) RecordUnbalancedLedger()                               {}
func (noopMetricsRecorder) RecordUnclassifiedCodes(count int)                     {}
