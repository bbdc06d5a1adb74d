package http

import (
	"net/http"

	"bot-analytics/internal/ingestors"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/shared/metrics"
	"bot-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService ingestors.AnalysisService, logSourceStore stores.LogSourceStore, maxBodyBytes int64, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	analysisHandler := NewAnalysisHandler(analysisService)
	putLogSourceHandler := NewPutLogSourceHandler(logSourceStore)
	logSourceReportHandler := NewLogSourceReportHandler(logSourceStore, analysisService)

	// Routes
	router.Group(func(r chi.Router) {
		r.Use(mwBodyLimit(maxBodyBytes))
		r.Post("/analyses", errorHandlingAdapter(analysisHandler))
		r.Put("/logs/{name}", errorHandlingAdapter(putLogSourceHandler))
	})
	router.Get("/logs/{name}/report", errorHandlingAdapter(logSourceReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
