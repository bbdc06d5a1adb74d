package http

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/shared/svcerrors"
	"bot-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwBodyLimit caps the request body. Reading past the limit fails with *http.MaxBytesError,
// which errorHandlingAdapter maps to HTTP_1000. Bytes actually read are recorded on the
// appResponseWriter and in the body size histogram.
func mwBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := &countingReadCloser{ReadCloser: http.MaxBytesReader(w, r.Body, maxBytes)}
			r.Body = body
			next.ServeHTTP(w, r)

			if appWriter, ok := w.(*appResponseWriter); ok {
				appWriter.bytesRead = body.n
			}
			metricRequestBodyBytes.WithLabelValues(routePattern(r)).Observe(float64(body.n))
		})
	}
}

type countingReadCloser struct {
	io.ReadCloser
	n int64
}

func (c *countingReadCloser) Read(p []byte) (int, error) {
	n, err := c.ReadCloser.Read(p)
	c.n += int64(n)
	return n, err
}

// mwPrometheus records request counts and durations per route pattern. Raw paths would
// carry log names and blow up label cardinality.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, errorCode := outcome(w)
		labels := []string{r.Method, routePattern(r), strconv.Itoa(status), errorCode}
		metricRequestsTotal.WithLabelValues(labels...).Inc()
		metricRequestDurationSeconds.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// mwRequestID extracts or generates a request ID and attaches a request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
			}
			// Handlers and error responses read the header back, so store the trimmed id
			setRequestID(r, id)
			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// mwRequestCompletionLog logs one line per request. Requests that ran an analysis carry
// its run id so the request can be joined with the run's own log lines.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, errorCode := outcome(w)
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Str(loggers.FieldErrorCode, errorCode).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds())
			if appWriter, ok := w.(*appResponseWriter); ok {
				event = event.
					Int64("bytes_read", appWriter.BytesRead()).
					Int("bytes_written", appWriter.BytesWritten())
				if runID := appWriter.RunID(); runID != "" {
					event = event.Str(loggers.FieldRunID, runID)
				}
			}
			event.Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				panicErr, ok := p.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", p)
				}
				writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
