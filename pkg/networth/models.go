package networth

// DefaultCurrency is the ISO code reported in dashboard summaries.
const DefaultCurrency = "INR"

// AssembleMode selects how category item lists are attached to entries.
type AssembleMode string

const (
	// SnapshotMode attaches each line item's single value for the
	// entry's own column (the monthly snapshot view).
	SnapshotMode AssembleMode = "snapshot"
	// FullHistoryMode attaches each line item's entire value history to
	// every entry, for analytics that compare months per instrument.
	FullHistoryMode AssembleMode = "full_history"
)

// Period labels accepted by FilterByPeriod.
const (
	PeriodAll        = "all"
	PeriodLastMonth  = "1month"
	Period3Months    = "3months"
	Period6Months    = "6months"
)

// AssetClass buckets an investment by inferred asset class.
type AssetClass string

const (
	ClassEquity      AssetClass = "equity"
	ClassDebt        AssetClass = "debt"
	ClassHybrid      AssetClass = "hybrid"
	ClassAlternative AssetClass = "alternative"
)

// RiskLevel classifies per-instrument return volatility.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TrendDirection classifies the recent direction of an instrument.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// LineItem is one named account/instrument/debt row and its per-period
// value history. Values[i] corresponds to the i-th time column.
type LineItem struct {
	Name   string   `json:"name"`
	Values []Amount `json:"values"`
}

// CategoryBlock holds a category's line items plus its authoritative
// subtotal for one period. The subtotal is read from a dedicated grid
// row and never recomputed from items; the grid is the source of truth
// even when the two diverge.
type CategoryBlock struct {
	Items    []LineItem `json:"items"`
	Subtotal Amount     `json:"subtotal"`
}

// NetWorthEntry is one period's complete financial snapshot. NetWorth
// is read directly from its own grid row, not derived from
// TotalAssets - TotalDebt. A zero MonthOverMonthChange or
// YearOverYearChange means "not applicable", not a real zero change.
type NetWorthEntry struct {
	Date                 string        `json:"date"`
	BankAccounts         CategoryBlock `json:"bank_accounts"`
	Investments          CategoryBlock `json:"investments"`
	OtherAssets          CategoryBlock `json:"other_assets"`
	Debt                 CategoryBlock `json:"debt"`
	TotalAssets          Amount        `json:"total_assets"`
	TotalDebt            Amount        `json:"total_debt"`
	NetWorth             Amount        `json:"net_worth"`
	MonthOverMonthChange Amount        `json:"month_over_month_change"`
	YearOverYearChange   Amount        `json:"year_over_year_change"`
}

// DashboardSummary carries the headline numbers for the selected period.
type DashboardSummary struct {
	CurrentNetWorth Amount  `json:"current_net_worth"`
	TotalGrowth     Amount  `json:"total_growth"`
	GrowthRate      float64 `json:"growth_rate"`
	Period          string  `json:"period"`
	Currency        string  `json:"currency"`
}

// DashboardSeries is the chart-ready output: the (possibly filtered)
// entry sequence plus a summary recomputed for that window.
type DashboardSeries struct {
	Entries []NetWorthEntry  `json:"entries"`
	Summary DashboardSummary `json:"summary"`
}

// AssetAllocation holds each category's share of total assets for the
// latest entry, in percent.
type AssetAllocation struct {
	BankAccounts float64 `json:"bank_accounts"`
	Investments  float64 `json:"investments"`
	OtherAssets  float64 `json:"other_assets"`
}

// MonthHighlight names one entry's month-over-month change.
type MonthHighlight struct {
	Date   string `json:"date"`
	Change Amount `json:"change"`
}

// PerformanceHighlights carries the best and worst months by
// month-over-month change. Nil when no entry has an applicable change.
type PerformanceHighlights struct {
	Best  *MonthHighlight `json:"best"`
	Worst *MonthHighlight `json:"worst"`
}

// AllocationScore is the heuristic band-based allocation assessment.
type AllocationScore struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// PerformanceMetrics aggregates the growth and risk figures for a series.
type PerformanceMetrics struct {
	GrowthRate  float64               `json:"growth_rate"`
	TotalGrowth Amount                `json:"total_growth"`
	CAGR        float64               `json:"cagr"`
	Volatility  float64               `json:"volatility"`
	MaxDrawdown float64               `json:"max_drawdown"`
	Highlights  PerformanceHighlights `json:"highlights"`
	Allocation  AssetAllocation       `json:"allocation"`
}

// DebtItem is one debt row's latest recorded magnitude.
type DebtItem struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// DebtAnalytics summarizes the debt side of the latest entry.
type DebtAnalytics struct {
	TotalDebt        Amount     `json:"total_debt"`
	DebtToAssetRatio float64    `json:"debt_to_asset_ratio"`
	MonthlyChange    Amount     `json:"monthly_change"`
	Items            []DebtItem `json:"items"`
}

// InvestmentVelocity is the derived per-instrument growth profile,
// computed fresh per analytics call from a LineItem's value history.
type InvestmentVelocity struct {
	Name             string         `json:"name"`
	CurrentValue     float64        `json:"current_value"`
	GrowthRate       float64        `json:"growth_rate"`
	AbsoluteGrowth   float64        `json:"absolute_growth"`
	ConsistencyScore float64        `json:"consistency_score"`
	RiskScore        RiskLevel      `json:"risk_score"`
	Trend            TrendDirection `json:"trend"`
	MonthlyReturns   []float64      `json:"monthly_returns"`
}

// AssetClassAllocation holds each asset class's share of total
// investment value, in percent.
type AssetClassAllocation struct {
	Equity      float64 `json:"equity"`
	Debt        float64 `json:"debt"`
	Hybrid      float64 `json:"hybrid"`
	Alternative float64 `json:"alternative"`
}

// InvestmentAnalytics is the portfolio-level view over all velocities.
// The winner slots are independent linear reductions; one instrument
// can hold several slots at once.
type InvestmentAnalytics struct {
	Velocities           []InvestmentVelocity `json:"velocities"`
	DiversificationScore float64              `json:"diversification_score"`
	OverallRiskScore     float64              `json:"overall_risk_score"`
	ClassAllocation      AssetClassAllocation `json:"class_allocation"`
	BestPerformer        *InvestmentVelocity  `json:"best_performer"`
	WorstPerformer       *InvestmentVelocity  `json:"worst_performer"`
	MostConsistent       *InvestmentVelocity  `json:"most_consistent"`
	HighestContributor   *InvestmentVelocity  `json:"highest_contributor"`
}
