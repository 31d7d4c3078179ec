package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"networth/internal/api"
	"networth/internal/config"
	"networth/internal/logging"
	"networth/internal/sheets"
	"networth/pkg/networth"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.Host, "host", cfg.Host, "Host to bind the server to")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to run the server on")
	flag.StringVar(&cfg.SpreadsheetID, "spreadsheet-id", cfg.SpreadsheetID, "Google Sheets spreadsheet ID (empty serves the built-in sample)")
	flag.StringVar(&cfg.SheetRange, "sheet-range", cfg.SheetRange, "A1 range of the tracker grid")
	flag.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for rotating log files")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger, writer, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("failed to initialize logger", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close log writer", "err", err)
		}
	}()

	engine := networth.New(networth.Options{Logger: logger})
	fetcher := sheets.NewFetcher(sheets.Options{
		SpreadsheetID:   cfg.SpreadsheetID,
		ReadRange:       cfg.SheetRange,
		CredentialsFile: cfg.CredentialsFile,
		APIKey:          cfg.SheetsAPIKey,
		UseSample:       cfg.UseSampleGrid(),
		Logger:          logger,
	})
	if cfg.UseSampleGrid() {
		logger.Warn("no spreadsheet configured; serving the built-in sample grid")
	}

	handler := api.NewRouter(api.Options{
		Engine:       engine,
		Fetcher:      fetcher,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		Logger:       logger,
	})
	handler = middleware.Compress(5)(handler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server starting", "addr", cfg.Addr())
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
}
