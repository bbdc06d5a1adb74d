package classifiers

import (
	"bot-analytics/internal/shared/metrics"
)

const (
	kindIP      = "ip"
	kindCountry = "country"
)

var (
	metricBotsDetectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubClassification,
			Name:      "bots_detected_total",
		},
		[]string{"kind"},
	)
)
