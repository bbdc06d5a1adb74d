package http

import (
	"net/http"

	"bot-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries the outcome of a request back up the middleware chain: the
// error the handler failed with, the analysis run it served and how much body it read.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError  *svcerrors.ServiceError
	runID     string
	bytesRead int64
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// SetRunID records the analysis run and exposes it as a response header. It must be called
// before the status is written.
func (w *appResponseWriter) SetRunID(runID string) {
	w.runID = runID
	w.Header().Set(headerRunID, runID)
}

func (w *appResponseWriter) RunID() string {
	return w.runID
}

func (w *appResponseWriter) BytesRead() int64 {
	return w.bytesRead
}

// outcome returns the status, defaulting to 200 when nothing was written, and the error code.
func outcome(w http.ResponseWriter) (status int, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, errorCode
}
