package http

import (
	"net/http"

	"bot-analytics/internal/ingestors"
)

type analysisHandler struct {
	analysisService ingestors.AnalysisService
}

func NewAnalysisHandler(analysisService ingestors.AnalysisService) AppHttpHandler {
	return &analysisHandler{
		analysisService: analysisService,
	}
}

// Handle processes POST /analyses requests. The body is raw access-log text.
func (h *analysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.analysisService.Analyze(r.Context(), r.Body)
	if err != nil {
		return err
	}

	writeReport(w, report)
	return nil
}
