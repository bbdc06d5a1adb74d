package aggregators

import (
	"bot-analytics/internal/shared/metrics"
)

// metricTimestampFailuresTotal counts stored timestamps that could not be parsed while
// finalizing an index. Every failure leaves its IP's sequence in arrival order, and that IP
// can no longer be flagged by the burst heuristic.
var (
	metricTimestampFailuresTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "timestamp_failures_total",
		},
	)
)
