package http

import (
	"bot-analytics/internal/shared/metrics"
)

var (
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricRequestDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	// Uploaded log bodies, counted up to the body limit.
	metricRequestBodyBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_body_bytes",
			Buckets:   []float64{1 << 10, 16 << 10, 256 << 10, 1 << 20, 8 << 20, 32 << 20, 128 << 20},
		},
		[]string{"route"},
	)
)
