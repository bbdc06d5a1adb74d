package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bot-analytics/internal/classifiers"
	internalhttp "bot-analytics/internal/http"
	"bot-analytics/internal/ingestors"
	"bot-analytics/internal/models"
	"bot-analytics/internal/parsers"
	"bot-analytics/internal/shared/configs"
	"bot-analytics/internal/shared/filestorages"
	"bot-analytics/internal/shared/loggers"
	"bot-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisService ingestors.AnalysisService
	logSourceStore  stores.LogSourceStore
}

type options struct {
	logOutput io.Writer
}

type Option func(*options)

// WithLogOutput redirects the application logs, stdout by default.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts ...Option) (*App, error) {
	o := &options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	appLogger, err := loggers.NewWithWriter(config.Log.Level, o.logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "bot-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logSourceStore := stores.NewLogSourceStore(fileStorage)

	// Initialize analysis service
	detection := config.Detection
	classifier := classifiers.NewBotClassifier(detection.MaxRequests, detection.BurstWindow())
	analysisService := ingestors.NewAnalysisService(parsers.NewLineParser(), classifier, detection.Shards, detection.ShardBuffer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analysisService, logSourceStore, config.Server.MaxBodyBytes, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		analysisService: analysisService,
		logSourceStore:  logSourceStore,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting bot-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, max_requests=%d, burst_window=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Detection.MaxRequests,
			app.config.Detection.BurstWindow())

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. In-flight analyses finish before it returns.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// AnalyzeLog runs one analysis over a log stored under name.
func (app *App) AnalyzeLog(ctx context.Context, name string) (*models.AnalysisReport, error) {
	rc, err := app.logSourceStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return app.Analyze(ctx, rc)
}

// Analyze runs one analysis over r with the application logger attached.
func (app *App) Analyze(ctx context.Context, r io.Reader) (*models.AnalysisReport, error) {
	ctx = app.appLogger.With().Str(loggers.FieldComponent, "analysis").Logger().WithContext(ctx)
	return app.analysisService.Analyze(ctx, r)
}

// ImportLog copies r into file storage under name.
func (app *App) ImportLog(ctx context.Context, name string, r io.Reader, overwrite bool) (*stores.LogSource, error) {
	return app.logSourceStore.Put(ctx, name, r, overwrite)
}
