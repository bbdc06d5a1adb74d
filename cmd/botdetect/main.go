package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bot-analytics/internal/app"
	"bot-analytics/internal/models"
	"bot-analytics/internal/reports"
	"bot-analytics/internal/shared/configs"
	"bot-analytics/internal/stores"
)

const defaultLogName = "sample-log.log"

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the YAML config file")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	filePath := flag.String("file", "", "analyse a local file instead of a stored log")
	verbose := flag.Bool("v", false, "list every skipped line and unsortable timestamp")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [log name]\n\nlog name defaults to %s\n\n", os.Args[0], defaultLogName)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the report
	application, err := app.New(cfg, app.WithLogOutput(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := analyze(ctx, application, *filePath, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	if err := render(report, *asJSON, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
		os.Exit(1)
	}
}

func analyze(ctx context.Context, application *app.App, filePath, name string) (*models.AnalysisReport, error) {
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return application.Analyze(ctx, f)
	}

	if name == "" {
		name = defaultLogName
	}
	report, err := application.AnalyzeLog(ctx, name)
	if errors.Is(err, stores.ErrLogSourceNotFound) {
		return nil, fmt.Errorf("no stored log named %q (upload it with PUT /logs/%s or use -file)", name, name)
	}
	return report, err
}

func render(report *models.AnalysisReport, asJSON, verbose bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	return reports.NewTextRenderer(verbose).Render(os.Stdout, report)
}
