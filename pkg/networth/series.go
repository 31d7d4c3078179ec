package networth

// BuildSeries filters the assembled entries to the requested period and
// recomputes the headline summary for that window.
func BuildSeries(entries []NetWorthEntry, period string) DashboardSeries {
	if period == "" {
		period = PeriodAll
	}
	filtered := FilterByPeriod(entries, period)
	summary := DashboardSummary{
		TotalGrowth: TotalGrowth(filtered),
		GrowthRate:  round2(GrowthRate(filtered)),
		Period:      period,
		Currency:    DefaultCurrency,
	}
	if len(filtered) > 0 {
		summary.CurrentNetWorth = filtered[len(filtered)-1].NetWorth
	}
	return DashboardSeries{Entries: filtered, Summary: summary}
}
