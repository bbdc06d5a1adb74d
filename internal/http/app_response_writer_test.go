package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bot-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ServiceError(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("ING_1001", "line 2 exceeds 1048576 bytes", nil))
	assert.Equal(t, "ING_1001", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_SetRunID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.SetRunID("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	appWriter.WriteHeader(http.StatusOK)

	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", appWriter.RunID())
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", rr.Header().Get(headerRunID))
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		writer     func() http.ResponseWriter
		wantStatus int
		wantCode   string
	}{
		{
			name:       "plain writer defaults to 200",
			writer:     func() http.ResponseWriter { return httptest.NewRecorder() },
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing written defaults to 200",
			writer:     func() http.ResponseWriter { return newAppResponseWriter(httptest.NewRecorder(), 1) },
			wantStatus: http.StatusOK,
		},
		{
			name: "error response",
			writer: func() http.ResponseWriter {
				appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
				appWriter.SetServiceError(svcerrors.NewNotFoundError("LOG_1002", "log source not found", nil))
				appWriter.WriteHeader(http.StatusNotFound)
				return appWriter
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "LOG_1002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, code := outcome(tt.writer())
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
