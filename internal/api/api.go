package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"networth/pkg/networth"
)

// GridFetcher supplies the raw tracker grid. The HTTP layer never
// talks to Google Sheets directly; it consumes whatever grid the
// fetcher returns.
type GridFetcher interface {
	Fetch(ctx context.Context) (networth.Grid, error)
}

// Options configures the API router.
type Options struct {
	Engine  *networth.Engine
	Fetcher GridFetcher
	// GeminiAPIKey and GeminiModel configure the insights endpoint.
	// An empty key leaves the endpoint up but answering UNCONFIGURED.
	GeminiAPIKey string
	GeminiModel  string
	Logger       *slog.Logger
}

// NewRouter builds the HTTP API router.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(requestLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	h := &handler{
		engine:       opts.Engine,
		fetcher:      opts.Fetcher,
		geminiAPIKey: opts.GeminiAPIKey,
		geminiModel:  opts.GeminiModel,
		logger:       logger,
	}

	r.Get("/api/health", h.health)
	r.Get("/api/dashboard", h.getDashboard)

	// Analytics
	r.Get("/api/analytics/performance", h.getPerformance)
	r.Get("/api/analytics/investments", h.getInvestments)
	r.Get("/api/analytics/debt", h.getDebt)

	// AI insights
	r.Post("/api/insights", h.generateInsights)

	return r
}

type handler struct {
	engine       *networth.Engine
	fetcher      GridFetcher
	geminiAPIKey string
	geminiModel  string
	logger       *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
