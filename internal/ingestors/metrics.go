package ingestors

import (
	"bot-analytics/internal/shared/metrics"
)

const (
	outcomeParsed   = "parsed"
	outcomeMismatch = "mismatch"
	outcomeFailed   = "failed"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "lines_total",
		},
		[]string{"outcome"},
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDurationSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
