package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"networth/internal/sheets"
	"networth/pkg/networth"
)

type stubFetcher struct {
	grid networth.Grid
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context) (networth.Grid, error) {
	return s.grid, s.err
}

// envelope mirrors Response with the payload left raw so each test can
// decode it into the concrete type it expects.
type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

func testRouter(t *testing.T, fetcher GridFetcher) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(Options{
		Engine:  networth.New(networth.Options{Logger: logger}),
		Fetcher: fetcher,
		Logger:  logger,
	})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetDashboard(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var series networth.DashboardSeries
	decodeData(t, rec, &series)
	if len(series.Entries) != 12 {
		t.Errorf("expected 12 entries, got %d", len(series.Entries))
	}
	if series.Summary.Period != networth.PeriodAll {
		t.Errorf("expected period %q, got %q", networth.PeriodAll, series.Summary.Period)
	}
	if series.Summary.CurrentNetWorth.Float() <= 0 {
		t.Errorf("expected positive current net worth, got %v", series.Summary.CurrentNetWorth)
	}
	if series.Summary.Currency != networth.DefaultCurrency {
		t.Errorf("expected currency %q, got %q", networth.DefaultCurrency, series.Summary.Currency)
	}
}

func TestGetDashboardPeriodFilter(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/dashboard?period=3months", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var series networth.DashboardSeries
	decodeData(t, rec, &series)
	if len(series.Entries) != 3 {
		t.Errorf("expected 3 entries for 3months, got %d", len(series.Entries))
	}
	if series.Summary.Period != networth.Period3Months {
		t.Errorf("expected period %q, got %q", networth.Period3Months, series.Summary.Period)
	}
}

func TestGetDashboardEmptySeries(t *testing.T) {
	grid := sheets.SampleGrid()
	netWorthRow := networth.DefaultSchema().NetWorthRow
	for col := 2; col < len(grid[netWorthRow]); col++ {
		grid[netWorthRow][col] = "0"
	}

	router := testRouter(t, stubFetcher{grid: grid})
	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty series, got %d", rec.Code)
	}

	var series networth.DashboardSeries
	decodeData(t, rec, &series)
	if len(series.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(series.Entries))
	}
	if series.Summary.CurrentNetWorth.Float() != 0 {
		t.Errorf("expected zeroed summary, got %v", series.Summary.CurrentNetWorth)
	}
}

func TestGetDashboardUpstreamFailure(t *testing.T) {
	fetchErr := networth.NewError(networth.ErrCodeUpstreamFailure, "sheets unreachable")
	router := testRouter(t, stubFetcher{err: fetchErr})
	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.ErrorCode != string(networth.ErrCodeUpstreamFailure) {
		t.Errorf("expected UPSTREAM_FAILURE, got %q", resp.ErrorCode)
	}
}

func TestGetDashboardBadSchema(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: networth.Grid{{"not"}, {"a"}, {"tracker"}}})
	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.ErrorCode != string(networth.ErrCodeBadSchema) {
		t.Errorf("expected BAD_SCHEMA, got %q", resp.ErrorCode)
	}
}

func TestGetPerformance(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/analytics/performance?period=6months", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var metrics networth.PerformanceMetrics
	decodeData(t, rec, &metrics)
	if metrics.GrowthRate <= 0 {
		t.Errorf("expected positive growth rate, got %v", metrics.GrowthRate)
	}
	if metrics.Allocation.Investments <= 0 {
		t.Errorf("expected non-zero investment allocation, got %v", metrics.Allocation.Investments)
	}
}

func TestGetInvestments(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/analytics/investments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var analytics networth.InvestmentAnalytics
	decodeData(t, rec, &analytics)
	if len(analytics.Velocities) != 6 {
		t.Errorf("expected 6 velocities, got %d", len(analytics.Velocities))
	}
	if analytics.BestPerformer == nil || analytics.HighestContributor == nil {
		t.Error("expected winner slots to be populated")
	}
	if analytics.DiversificationScore <= 0 {
		t.Errorf("expected positive diversification score, got %v", analytics.DiversificationScore)
	}
}

func TestGetDebt(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/analytics/debt", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var analytics networth.DebtAnalytics
	decodeData(t, rec, &analytics)
	if analytics.TotalDebt.Float() <= 0 {
		t.Errorf("expected positive total debt, got %v", analytics.TotalDebt)
	}
	if len(analytics.Items) != 3 {
		t.Errorf("expected 3 debt items, got %d", len(analytics.Items))
	}
	for _, item := range analytics.Items {
		if item.Amount.Float() < 0 {
			t.Errorf("debt item %s has negative amount %v", item.Name, item.Amount)
		}
	}
}

func TestGenerateInsightsUnconfigured(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodPost, "/api/insights", `{"risk_profile":"balanced"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without an API key, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeError(t, rec)
	if resp.ErrorCode != string(networth.ErrCodeUnconfigured) {
		t.Errorf("expected UNCONFIGURED, got %q", resp.ErrorCode)
	}
}

func TestGenerateInsightsBadPayload(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodPost, "/api/insights", `{"risk_profile":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.ErrorCode != string(networth.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %q", resp.ErrorCode)
	}
}

func TestGenerateInsightsEmptySeries(t *testing.T) {
	grid := sheets.SampleGrid()
	netWorthRow := networth.DefaultSchema().NetWorthRow
	for col := 2; col < len(grid[netWorthRow]); col++ {
		grid[netWorthRow][col] = "0"
	}

	router := testRouter(t, stubFetcher{grid: grid})
	rec := doRequest(t, router, http.MethodPost, "/api/insights", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty series, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.ErrorCode != string(networth.ErrCodeEmptySeries) {
		t.Errorf("expected EMPTY_SERIES, got %q", resp.ErrorCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t, stubFetcher{grid: sheets.SampleGrid()})
	rec := doRequest(t, router, http.MethodGet, "/api/unknown", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
