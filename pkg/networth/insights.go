package networth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const insightsSystemPrompt = `You are a personal-finance analyst reviewing a household net-worth dashboard.

You are given the current dashboard summary and per-instrument investment analytics (growth rates, consistency, risk levels, diversification and asset-class breakdown). Assess the overall financial trajectory, concentration risk, and debt posture, and suggest practical next steps.

Output requirements:
- Output a pure JSON object. No markdown fences, no text outside the JSON.
- Fields:
  - summary: string (2-3 sentences on the overall picture)
  - findings: [string] (3-6 short observations grounded in the numbers provided)
  - recommendations: [string] (2-5 concrete, actionable suggestions)
  - disclaimer: string (a brief risk disclaimer)
- Never promise returns. Base every statement on the provided data only.
- If data is sparse, say so rather than inventing figures.`

const (
	defaultInsightsModel   = "gemini-2.0-flash"
	insightsRequestTimeout = 90 * time.Second
	insightsMaxFindings    = 6
)

// InsightsRequest defines the inputs for AI dashboard insights.
type InsightsRequest struct {
	APIKey       string
	Model        string
	RiskProfile  string // "conservative", "balanced", "aggressive"
	CustomPrompt string
}

// InsightsResult is the structured response returned to clients.
// Nothing is persisted; each call is computed fresh.
type InsightsResult struct {
	GeneratedAt     string   `json:"generated_at"`
	Model           string   `json:"model"`
	Summary         string   `json:"summary"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Disclaimer      string   `json:"disclaimer"`
}

type insightsModelResponse struct {
	Summary         string   `json:"summary"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Disclaimer      string   `json:"disclaimer"`
}

type insightsPromptInput struct {
	Summary     DashboardSummary    `json:"summary"`
	Investments InvestmentAnalytics `json:"investments"`
	Performance PerformanceMetrics  `json:"performance"`
	Debt        DebtAnalytics       `json:"debt"`
	RiskProfile string              `json:"risk_profile,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// GenerateInsights builds a prompt from the derived analytics and asks
// the model for a narrative assessment. The engine stays stateless: the
// caller supplies everything, nothing is cached or stored.
func (e *Engine) GenerateInsights(ctx context.Context, req InsightsRequest, input DashboardSeries, entries []NetWorthEntry) (*InsightsResult, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return nil, NewError(ErrCodeUnconfigured, "insights api key is not configured")
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = defaultInsightsModel
	}

	promptInput := insightsPromptInput{
		Summary:     input.Summary,
		Investments: ComputeInvestmentAnalytics(InvestmentItems(entries)),
		Performance: ComputePerformanceMetrics(entries),
		Debt:        ComputeDebtAnalytics(entries),
		RiskProfile: strings.TrimSpace(req.RiskProfile),
		Notes:       strings.TrimSpace(req.CustomPrompt),
	}
	userPrompt, err := json.Marshal(promptInput)
	if err != nil {
		return nil, WrapError(ErrCodeInternal, "encode insights prompt", err)
	}

	ctx, cancel := context.WithTimeout(ctx, insightsRequestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  strings.TrimSpace(req.APIKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, WrapError(ErrCodeUpstreamFailure, "create insights client", err)
	}

	requestConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: insightsSystemPrompt}},
		},
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
	}
	response, err := client.Models.GenerateContent(ctx, model, genai.Text(string(userPrompt)), requestConfig)
	if err != nil {
		return nil, WrapError(ErrCodeUpstreamFailure, "insights generate content", err)
	}
	content := strings.TrimSpace(response.Text())
	if content == "" {
		return nil, NewError(ErrCodeUpstreamFailure, "insights response is empty")
	}
	if v := strings.TrimSpace(response.ModelVersion); v != "" {
		model = v
	}

	parsed, err := parseInsightsResponse(content)
	if err != nil {
		return nil, err
	}
	return &InsightsResult{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Model:           model,
		Summary:         strings.TrimSpace(parsed.Summary),
		Findings:        normalizeLines(parsed.Findings, insightsMaxFindings),
		Recommendations: normalizeLines(parsed.Recommendations, insightsMaxFindings),
		Disclaimer:      strings.TrimSpace(parsed.Disclaimer),
	}, nil
}

func parseInsightsResponse(content string) (*insightsModelResponse, error) {
	cleaned := cleanupModelJSON(content)
	var parsed insightsModelResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, WrapError(ErrCodeUpstreamFailure, fmt.Sprintf("parse insights response: %.120s", cleaned), err)
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return nil, NewError(ErrCodeUpstreamFailure, "insights response missing summary")
	}
	return &parsed, nil
}

// cleanupModelJSON strips markdown fences and anything outside the
// outermost JSON object. Models occasionally wrap output despite the
// JSON-only contract.
func cleanupModelJSON(content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		lines := strings.Split(trimmed, "\n")
		if len(lines) >= 2 {
			lines = lines[1:]
			if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
				lines = lines[:len(lines)-1]
			}
			trimmed = strings.Join(lines, "\n")
		}
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		trimmed = trimmed[start : end+1]
	}
	return strings.TrimSpace(trimmed)
}

func normalizeLines(lines []string, limit int) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
		if len(result) == limit {
			break
		}
	}
	return result
}
