package streams

import (
	"bot-analytics/internal/shared/metrics"
)

var (
	streamRawLine              = "raw_line"
	metricRawLineProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "raw_line_published_total",
		},
		[]string{"stream_id"},
	)

	metricRawLineConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "raw_line_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
