package parsers

import (
	"bot-analytics/internal/shared/metrics"
)

var (
	metricResponseTimeInvalidTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParsing,
			Name:      "response_time_invalid_total",
		},
	)
)
