package api

import (
	"encoding/json"
	"net/http"

	"networth/pkg/networth"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loadEntries fetches the current grid and assembles it in the
// requested mode. Every data endpoint goes through here; the fetch is
// bound to the request context so client disconnects cancel it.
func (h *handler) loadEntries(r *http.Request, mode networth.AssembleMode) ([]networth.NetWorthEntry, error) {
	grid, err := h.fetcher.Fetch(r.Context())
	if err != nil {
		return nil, err
	}
	return h.engine.AssembleEntries(grid, mode)
}

// getDashboard returns the net-worth series for the requested period.
// An empty series is not an error: a fresh tracker legitimately has no
// populated months yet, so the client gets an empty list and a zeroed
// summary.
func (h *handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.loadEntries(r, networth.SnapshotMode)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	series := networth.BuildSeries(entries, r.URL.Query().Get("period"))
	writeSuccess(w, series)
}

func (h *handler) getPerformance(w http.ResponseWriter, r *http.Request) {
	entries, err := h.loadEntries(r, networth.SnapshotMode)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	filtered := networth.FilterByPeriod(entries, r.URL.Query().Get("period"))
	writeSuccess(w, networth.ComputePerformanceMetrics(filtered))
}

// getInvestments needs full value histories: per-instrument velocity is
// derived from each line item's whole series, not a single snapshot.
func (h *handler) getInvestments(w http.ResponseWriter, r *http.Request) {
	entries, err := h.loadEntries(r, networth.FullHistoryMode)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	items := networth.InvestmentItems(entries)
	writeSuccess(w, networth.ComputeInvestmentAnalytics(items))
}

func (h *handler) getDebt(w http.ResponseWriter, r *http.Request) {
	entries, err := h.loadEntries(r, networth.FullHistoryMode)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, networth.ComputeDebtAnalytics(entries))
}

func (h *handler) generateInsights(w http.ResponseWriter, r *http.Request) {
	var payload insightsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest,
			networth.WrapError(networth.ErrCodeInvalidInput, "decode insights payload", err))
		return
	}

	entries, err := h.loadEntries(r, networth.FullHistoryMode)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if len(entries) == 0 {
		writeErrorResponse(w, http.StatusNotFound,
			networth.NewError(networth.ErrCodeEmptySeries, "no populated periods to analyze"))
		return
	}

	model := payload.Model
	if model == "" {
		model = h.geminiModel
	}
	series := networth.BuildSeries(entries, payload.Period)
	result, err := h.engine.GenerateInsights(r.Context(), networth.InsightsRequest{
		APIKey:       h.geminiAPIKey,
		Model:        model,
		RiskProfile:  payload.RiskProfile,
		CustomPrompt: payload.CustomPrompt,
	}, series, entries)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, result)
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
