package filestorages

import (
	"errors"

	"bot-analytics/internal/shared/metrics"
)

const (
	opPut = "put"
	opGet = "get"
)

var metricOpsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubStorage,
		Name:      "file_ops_total",
	},
	[]string{"op", "outcome"},
)

func observeOp(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrFileNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrFileAlreadyExists):
		outcome = "already_exists"
	case errors.Is(err, ErrInvalidKey):
		outcome = "invalid_key"
	default:
		outcome = "error"
	}
	metricOpsTotal.WithLabelValues(op, outcome).Inc()
}
