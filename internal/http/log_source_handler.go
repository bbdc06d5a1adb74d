package http

import (
	"errors"
	"net/http"

	"bot-analytics/internal/ingestors"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/shared/validators"
	"bot-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// LogSourceResponse is the body of a successful upload.
type LogSourceResponse struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type putLogSourceHandler struct {
	logSourceStore stores.LogSourceStore
	validate       *validators.Validate
}

func NewPutLogSourceHandler(logSourceStore stores.LogSourceStore) AppHttpHandler {
	return &putLogSourceHandler{
		logSourceStore: logSourceStore,
		validate:       validators.New(),
	}
}

// Handle processes PUT /logs/{name} requests.
func (h *putLogSourceHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name, err := logName(h.validate, r)
	if err != nil {
		return err
	}
	allowOverwrite, err := overwrite(r)
	if err != nil {
		return errInvalidLogName("overwrite must be a boolean", err)
	}

	source, err := h.logSourceStore.Put(r.Context(), name, r.Body, allowOverwrite)
	if err != nil {
		if errors.Is(err, stores.ErrLogSourceAlreadyExist) {
			return errLogSourceAlreadyExists(err)
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return errInternalLogSourceStoreFailed(err)
	}

	loggers.Ctx(r.Context()).Info().
		Str(loggers.FieldLogName, source.Name).
		Int64("size", source.Size).
		Bool("overwrite", allowOverwrite).
		Msg("log source stored")

	writeJSON(w, http.StatusCreated, LogSourceResponse{Name: source.Name, Size: source.Size})
	return nil
}

type logSourceReportHandler struct {
	logSourceStore  stores.LogSourceStore
	analysisService ingestors.AnalysisService
	validate        *validators.Validate
}

func NewLogSourceReportHandler(logSourceStore stores.LogSourceStore, analysisService ingestors.AnalysisService) AppHttpHandler {
	return &logSourceReportHandler{
		logSourceStore:  logSourceStore,
		analysisService: analysisService,
		validate:        validators.New(),
	}
}

// Handle processes GET /logs/{name}/report requests.
func (h *logSourceReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name, err := logName(h.validate, r)
	if err != nil {
		return err
	}

	rc, err := h.logSourceStore.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, stores.ErrLogSourceNotFound) {
			return errLogSourceNotFound(err)
		}
		return errInternalLogSourceStoreFailed(err)
	}
	defer rc.Close()

	ctx := loggers.Ctx(r.Context()).With().Str(loggers.FieldLogName, name).Logger().WithContext(r.Context())
	report, err := h.analysisService.Analyze(ctx, rc)
	if err != nil {
		return err
	}

	writeReport(w, report)
	return nil
}

func logName(validate *validators.Validate, r *http.Request) (string, error) {
	name := chi.URLParam(r, paramLogName)
	if err := validate.Var(name, "required,"+validators.TagLogName); err != nil {
		return "", errInvalidLogName("invalid log name: use letters, digits, '.', '_' or '-'", err)
	}
	return name, nil
}
