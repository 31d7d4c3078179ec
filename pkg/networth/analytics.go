package networth

import "math"

// GrowthRate returns the first-to-last percentage change of net worth.
// Fewer than two entries, or a zero first value, yields 0.
func GrowthRate(entries []NetWorthEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	first := entries[0].NetWorth.Float()
	last := entries[len(entries)-1].NetWorth.Float()
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// TotalGrowth returns the absolute first-to-last net-worth change.
func TotalGrowth(entries []NetWorthEntry) Amount {
	if len(entries) < 2 {
		return Amount{}
	}
	return entries[len(entries)-1].NetWorth.Sub(entries[0].NetWorth)
}

// ComputeAssetAllocation returns each category subtotal as a percentage
// of the entry's total assets. A zero total yields all zeros.
func ComputeAssetAllocation(entry NetWorthEntry) AssetAllocation {
	total := entry.TotalAssets.Float()
	if total == 0 {
		return AssetAllocation{}
	}
	return AssetAllocation{
		BankAccounts: entry.BankAccounts.Subtotal.Float() / total * 100,
		Investments:  entry.Investments.Subtotal.Float() / total * 100,
		OtherAssets:  entry.OtherAssets.Subtotal.Float() / total * 100,
	}
}

// DebtToAssetRatio returns total debt over total assets, in percent.
func DebtToAssetRatio(entry NetWorthEntry) float64 {
	total := entry.TotalAssets.Float()
	if total == 0 {
		return 0
	}
	return entry.TotalDebt.Float() / total * 100
}

// CAGR returns the compound growth rate per period, in percent.
func CAGR(initial, final float64, periods int) float64 {
	if periods == 0 || initial == 0 {
		return 0
	}
	return (math.Pow(final/initial, 1/float64(periods)) - 1) * 100
}

// Volatility returns the standard deviation of month-over-month
// fractional net-worth returns, in percent.
func Volatility(entries []NetWorthEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(entries)-1)
	for i := 1; i < len(entries); i++ {
		prev := entries[i-1].NetWorth.Float()
		if prev == 0 {
			continue
		}
		returns = append(returns, (entries[i].NetWorth.Float()-prev)/prev)
	}
	return stdDev(returns) * 100
}

// MaxDrawdown returns the largest peak-to-trough percentage decline
// walking the series left to right against a running peak.
func MaxDrawdown(entries []NetWorthEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	peak := entries[0].NetWorth.Float()
	var maxDrawdown float64
	for _, entry := range entries[1:] {
		v := entry.NetWorth.Float()
		if v > peak {
			peak = v
			continue
		}
		if peak == 0 {
			continue
		}
		drawdown := (peak - v) / peak * 100
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	return maxDrawdown
}

// ComputePerformanceHighlights finds the best and worst months by
// month-over-month change. Entries whose change is exactly zero are the
// "not applicable" sentinel and are excluded. Ties keep the first
// occurrence.
func ComputePerformanceHighlights(entries []NetWorthEntry) PerformanceHighlights {
	var highlights PerformanceHighlights
	for _, entry := range entries {
		change := entry.MonthOverMonthChange
		if change.IsZero() {
			continue
		}
		if highlights.Best == nil || change.GreaterThan(highlights.Best.Change.Decimal) {
			highlights.Best = &MonthHighlight{Date: entry.Date, Change: change}
		}
		if highlights.Worst == nil || change.LessThan(highlights.Worst.Change.Decimal) {
			highlights.Worst = &MonthHighlight{Date: entry.Date, Change: change}
		}
	}
	return highlights
}

// Allocation scoring bands. Heuristic policy, not a derived statistical
// measure; the bands and weights are configuration.
const (
	investBandLo, investBandHi = 30.0, 70.0
	bankBandLo, bankBandHi     = 5.0, 30.0
	otherBandLo, otherBandHi   = 20.0, 60.0
)

// ComputeAllocationScore scores the latest allocation with three
// independent band checks and maps the total to qualitative feedback.
func ComputeAllocationScore(allocation AssetAllocation) AllocationScore {
	var score float64
	if allocation.Investments >= investBandLo && allocation.Investments <= investBandHi {
		score += 40
	}
	if allocation.BankAccounts >= bankBandLo && allocation.BankAccounts <= bankBandHi {
		score += 30
	}
	if allocation.OtherAssets >= otherBandLo && allocation.OtherAssets <= otherBandHi {
		score += 30
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = "Excellent allocation balance"
	case score >= 60:
		feedback = "Good allocation with minor adjustments possible"
	case score >= 40:
		feedback = "Consider rebalancing your portfolio"
	default:
		feedback = "Review your asset allocation strategy"
	}
	return AllocationScore{Score: score, Feedback: feedback}
}

// ComputePerformanceMetrics bundles the growth and risk figures for a
// series. An empty series yields zeroed defaults, never an error.
func ComputePerformanceMetrics(entries []NetWorthEntry) PerformanceMetrics {
	metrics := PerformanceMetrics{
		GrowthRate:  GrowthRate(entries),
		TotalGrowth: TotalGrowth(entries),
		Volatility:  Volatility(entries),
		MaxDrawdown: MaxDrawdown(entries),
		Highlights:  ComputePerformanceHighlights(entries),
	}
	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		metrics.Allocation = ComputeAssetAllocation(latest)
		metrics.CAGR = CAGR(entries[0].NetWorth.Float(), latest.NetWorth.Float(), len(entries)-1)
	}
	return metrics
}

// ComputeDebtAnalytics summarizes the debt side of the latest entry.
func ComputeDebtAnalytics(entries []NetWorthEntry) DebtAnalytics {
	if len(entries) == 0 {
		return DebtAnalytics{}
	}
	latest := entries[len(entries)-1]
	analytics := DebtAnalytics{
		TotalDebt:        latest.TotalDebt,
		DebtToAssetRatio: DebtToAssetRatio(latest),
	}
	if len(entries) >= 2 {
		analytics.MonthlyChange = latest.TotalDebt.Sub(entries[len(entries)-2].TotalDebt)
	}
	for _, item := range latest.Debt.Items {
		analytics.Items = append(analytics.Items, DebtItem{
			Name:   item.Name,
			Amount: latestRecorded(item.Values),
		})
	}
	return analytics
}

// latestRecorded walks backwards past the unpopulated trailing columns
// of a full-history item to find its most recent recorded value.
func latestRecorded(values []Amount) Amount {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i].IsPositive() {
			return values[i]
		}
	}
	return Amount{}
}
