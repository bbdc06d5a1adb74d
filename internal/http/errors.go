package http

import (
	"fmt"

	"bot-analytics/internal/shared/svcerrors"
)

// HTTP surface errors
const (
	codeBodyTooLarge = "HTTP_1000"

	codeInvalidLogName         = "LOG_1000"
	codeLogSourceAlreadyExists = "LOG_1001"
	codeLogSourceNotFound      = "LOG_1002"

	codeInternalLogSourceStoreFailed = "LOG_9000"
)

func errBodyTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBodyTooLarge, fmt.Sprintf("request body too large: must be <= %d bytes", limit), cause)
}

func errInvalidLogName(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogName, msg, cause)
}

func errLogSourceAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeLogSourceAlreadyExists, "log source already exists", cause)
}

func errLogSourceNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogSourceNotFound, "log source not found", cause)
}

func errInternalLogSourceStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogSourceStoreFailed, fmt.Errorf("logSourceStoreFailed: %w", cause))
}
