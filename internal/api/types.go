package api

type insightsPayload struct {
	Model        string `json:"model"`
	Period       string `json:"period"`
	RiskProfile  string `json:"risk_profile"`
	CustomPrompt string `json:"custom_prompt"`
}
