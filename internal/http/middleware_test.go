package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bot-analytics/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID_GeneratesIDWhenNotProvided(t *testing.T) {
	t.Parallel()

	logger, _ := loggers.New("info")
	handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Generated ids are ULIDs
		assert.Len(t, r.Header.Get(headerRequestID), 26)
		assert.NotNil(t, loggers.Ctx(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMwRequestID_UsesProvidedID(t *testing.T) {
	t.Parallel()

	logger, _ := loggers.New("info")
	handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "upload-42", r.Header.Get(headerRequestID))
	}))

	req := httptest.NewRequest(http.MethodPut, "/logs/access.log", nil)
	req.Header.Set(headerRequestID, "  upload-42 ")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestMwRequestID_ErrorResponseCarriesTrimmedID(t *testing.T) {
	t.Parallel()

	logger, _ := loggers.New("info")
	handler := mwRequestID(logger)(errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return errLogSourceNotFound(nil)
		},
	}))

	req := httptest.NewRequest(http.MethodGet, "/logs/access.log/report", nil)
	req.Header.Set(headerRequestID, "  upload-42 ")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "upload-42", errorResponse.RequestID)
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "shard worker gone"},
		{name: "error panic", panic: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, _ := loggers.New("info")
			handler := mwRecoverer(mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get("Content-Type"))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwBodyLimit_CountsBytesRead(t *testing.T) {
	t.Parallel()

	var appWriter *appResponseWriter
	handler := mwAppResponseWriter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter = w.(*appResponseWriter)
		mwBodyLimit(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := io.ReadAll(r.Body)
			var maxBytesErr *http.MaxBytesError
			assert.ErrorAs(t, err, &maxBytesErr)
		})).ServeHTTP(w, r)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(strings.Repeat("x", 64))))

	require.NotNil(t, appWriter)
	assert.Equal(t, int64(8), appWriter.BytesRead())
}

func TestMwRequestCompletionLog_IncludesRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &buf)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Post("/analyses", func(w http.ResponseWriter, r *http.Request) {
		w.(*appResponseWriter).SetRunID("01ARZ3NDEKTSV4RRFFQ69G5FAV")
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request completed", line["message"])
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", line[loggers.FieldRunID])
	assert.Equal(t, float64(http.StatusOK), line[loggers.FieldHttpStatus])
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	logger, _ := loggers.New("info")
	router := chi.NewRouter()
	setupMiddleware(router, logger)

	router.Get("/logs/{name}/report", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(headerRequestID))
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/analyses", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/logs/access.log/report", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}
