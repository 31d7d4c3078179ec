package networth

// periodWindows maps named periods to trailing window sizes in entries.
var periodWindows = map[string]int{
	PeriodLastMonth: 1,
	Period3Months:   3,
	Period6Months:   6,
}

// FilterByPeriod slices the series to a trailing window. "all", an
// empty series, and any unknown period return the input unchanged. The
// result is a pure tail slice; callers must recompute summary figures
// afterwards since the window's first entry differs.
func FilterByPeriod(entries []NetWorthEntry, period string) []NetWorthEntry {
	if len(entries) == 0 || period == PeriodAll {
		return entries
	}
	window, ok := periodWindows[period]
	if !ok || window >= len(entries) {
		return entries
	}
	return entries[len(entries)-window:]
}
