package ingestors

import (
	"fmt"

	"bot-analytics/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeValidationFailed = "ING_1000"
	codeLineTooLong      = "ING_1001"

	codeInternalReadFailed      = "ING_9000"
	codeInternalAggregateFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errLineTooLong returns an error when a single line exceeds the scanner limit.
func errLineTooLong(lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		codeLineTooLong,
		fmt.Sprintf("line %d exceeds %d bytes", lineNumber, MaxLineBytes),
		cause,
	)
}

// errInternalReadFailed returns an error when the line source cannot be read.
func errInternalReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("readFailed: %w", cause))
}

// errInternalAggregateFailed returns an error when shard indexes cannot be recorded or merged.
func errInternalAggregateFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregateFailed, fmt.Errorf("aggregateFailed: %w", cause))
}
