package http

import (
	"net/http"
	"strconv"
	"strings"

	"bot-analytics/internal/models"
)

const (
	headerRequestID   = "x-request-id"
	headerRunID       = "x-run-id"
	headerContentType = "content-type"

	queryOverwrite = "overwrite"
	paramLogName   = "name"

	contentTypeJSON = "application/json"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// overwrite reads ?overwrite=; absent means false.
func overwrite(r *http.Request) (bool, error) {
	value := strings.TrimSpace(r.URL.Query().Get(queryOverwrite))
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

// writeReport answers with report as JSON and tags the response with its run id.
func writeReport(w http.ResponseWriter, report *models.AnalysisReport) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetRunID(report.RunID)
	} else {
		w.Header().Set(headerRunID, report.RunID)
	}
	writeJSON(w, http.StatusOK, report)
}
