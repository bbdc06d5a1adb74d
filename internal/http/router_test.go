package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bot-analytics/internal/classifiers"
	"bot-analytics/internal/ingestors"
	"bot-analytics/internal/models"
	"bot-analytics/internal/parsers"
	"bot-analytics/internal/shared/filestorages"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealRouter(t *testing.T, maxBodyBytes int64) http.Handler {
	t.Helper()

	logger, _ := loggers.New("error")
	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	analysisService := ingestors.NewAnalysisService(parsers.NewLineParser(), classifiers.NewDefaultBotClassifier(), 4, 64)
	return NewRouter(analysisService, stores.NewLogSourceStore(fileStorage), maxBodyBytes, logger)
}

func burstLog(ip, country string, n int) string {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `%s - %s - [%s] "GET / HTTP/1.1" 200 512 "-" "curl/7.88.1" 15`+"\n",
			ip, country, base.Add(time.Duration(i)*10*time.Second).Format(models.TimestampLayout))
	}
	return b.String()
}

func TestRouter_AnalysesEndToEnd(t *testing.T) {
	t.Parallel()

	router := newRealRouter(t, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(burstLog("10.0.0.7", "NL", 101)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var report models.AnalysisReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	require.Len(t, report.Verdicts.BotIPs, 1)
	assert.Equal(t, "10.0.0.7", report.Verdicts.BotIPs[0].IP)
	assert.Equal(t, []models.CountryVerdict{{CountryCode: "NL", RequestCount: 101}}, report.Verdicts.BotCountries)
	assert.Equal(t, report.RunID, rr.Header().Get(headerRunID))
}

func TestRouter_AnalysesBodyTooLarge(t *testing.T) {
	t.Parallel()

	router := newRealRouter(t, 512)

	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(burstLog("10.0.0.7", "NL", 50)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "HTTP_1000", decodeError(t, rr).ErrorCode)
}

func TestRouter_StoredLogReport(t *testing.T) {
	t.Parallel()

	router := newRealRouter(t, 1<<20)

	put := httptest.NewRequest(http.MethodPut, "/logs/sample-log.log", strings.NewReader(burstLog("10.0.0.8", "SE", 5)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, put)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// Second upload without overwrite conflicts
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/logs/sample-log.log", strings.NewReader("x")))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/logs/sample-log.log/report", nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var report models.AnalysisReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 5, report.ParsedRecords)
	assert.Equal(t, map[string]int{"SE": 5}, report.RequestsByCountry)
	assert.Empty(t, report.Verdicts.BotIPs)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := newRealRouter(t, 1024)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(burstLog("10.0.0.8", "NL", 2))))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "bot_analytics_http_requests_total")
	assert.Contains(t, body, "bot_analytics_http_request_body_bytes")
	assert.Contains(t, body, "bot_analytics_analysis_runs_total")
	assert.Contains(t, body, "bot_analytics_analysis_lines_total")
}
