package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	"hypeads-report/internal/adapter/export"
	"hypeads-report/internal/adapter/gemini"
	httpadapter "hypeads-report/internal/adapter/http"
	"hypeads-report/internal/adapter/usecase"
	"hypeads-report/internal/config"
	"hypeads-report/internal/data"
)

// main is the entry point of the hypeads-report service. It loads
// configuration and the campaign dataset, wires the AI gateway and use
// cases, then starts the HTTP server. On receiving a termination signal
// it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Load the campaign dataset: the embedded sample or the configured file.
	ds, err := data.Load(cfg.Report.DataFile)
	if err != nil {
		logger.Error("dataset load error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("campaign data loaded",
		slog.String("campaign", ds.Summary.CampaignName),
		slog.Int("days", len(ds.Daily)))

	if cfg.Gemini.APIKey == "" {
		logger.Warn("no Gemini API key configured, AI features will serve fallback values")
	}

	gateway := gemini.NewClient(cfg.Gemini)
	reportUC := usecase.NewReportUseCase(ds.Summary, ds.Daily)
	insightUC := usecase.NewInsightUseCase(gateway, logger, ds.Summary, ds.Daily)
	verificationUC := usecase.NewVerificationUseCase(gateway, logger)

	handler := httpadapter.NewHandler(reportUC, verificationUC, insightUC,
		export.NewCSVExporter(), export.NewPDFExporter(), logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
