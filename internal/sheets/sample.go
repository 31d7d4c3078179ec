package sheets

import (
	"fmt"
	"strings"

	"networth/pkg/networth"
)

// sampleMonths are the populated columns of the built-in grid.
var sampleMonths = []string{
	"Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025", "Feb 2025", "Mar 2025",
	"Apr 2025", "May 2025", "Jun 2025", "Jul 2025", "Aug 2025", "Sep 2025",
}

type sampleRow struct {
	name   string
	values []int64
}

// seq produces n values walking from start by step.
func seq(start, step int64) []int64 {
	values := make([]int64, len(sampleMonths))
	for i := range values {
		values[i] = start + step*int64(i)
	}
	return values
}

// SampleGrid returns a self-consistent tracker export used when no
// spreadsheet is configured, and as the fixture for integration-style
// tests. Subtotal and total rows are computed from the item rows so the
// sample never trips the divergence warning.
func SampleGrid() networth.Grid {
	bank := []sampleRow{
		{"HDFC Bank", seq(240000, 8000)},
		{"ICICI Bank", seq(150000, 5000)},
		{"SBI Savings", seq(60000, 0)},
		{"Cash", seq(25000, 500)},
	}
	investments := []sampleRow{
		{"Indian Stocks", seq(900000, 32000)},
		{"US Stocks", seq(500000, 18000)},
		{"Mutual Funds", seq(700000, 15000)},
		{"PPF", seq(350000, 6000)},
		{"EPF", seq(420000, 7000)},
		{"Crypto", []int64{60000, 85000, 52000, 48000, 70000, 95000, 80000, 110000, 90000, 120000, 105000, 140000}},
	}
	otherAssets := []sampleRow{
		{"Home", seq(9500000, 0)},
		{"Car", seq(850000, -9000)},
		{"Gold", seq(380000, 4000)},
		{"Silver", seq(45000, 1000)},
	}
	debt := []sampleRow{
		{"Home Loan", seq(-4800000, 42000)},
		{"Car Loan", seq(-360000, 9000)},
		{"Credit Card", seq(-60000, 2500)},
	}

	grid := networth.Grid{
		{"Net Worth Tracker"},
		{},
		append([]string{"", "Category"}, sampleMonths...),
		{"", "ASSETS"},
	}
	grid = appendSection(grid, bank, "Bank Subtotal")
	grid = append(grid, []string{})
	grid = appendSection(grid, investments, "Investments Subtotal")
	grid = append(grid, []string{})
	grid = appendSection(grid, otherAssets, "Other Assets Subtotal")
	grid = append(grid, []string{})

	totalAssets := sumRows(append(append(append([]sampleRow{}, bank...), investments...), otherAssets...))
	grid = append(grid, valueRow("Total Assets", totalAssets))
	grid = append(grid, []string{})

	grid = append(grid, rowsOf(debt)...)
	// The fourth debt row is intentionally blank history.
	grid = append(grid, valueRow("Personal Loan", seq(0, 0)))
	totalDebt := absValues(sumRows(debt))
	grid = append(grid, valueRow("Total Debt", totalDebt))
	grid = append(grid, []string{})

	netWorth := make([]int64, len(sampleMonths))
	for i := range netWorth {
		netWorth[i] = totalAssets[i] - totalDebt[i]
	}
	grid = append(grid, valueRow("Net Worth", netWorth))
	return grid
}

func appendSection(grid networth.Grid, rows []sampleRow, subtotalName string) networth.Grid {
	grid = append(grid, rowsOf(rows)...)
	return append(grid, valueRow(subtotalName, sumRows(rows)))
}

func rowsOf(rows []sampleRow) networth.Grid {
	out := make(networth.Grid, 0, len(rows))
	for _, row := range rows {
		out = append(out, valueRow(row.name, row.values))
	}
	return out
}

func sumRows(rows []sampleRow) []int64 {
	sums := make([]int64, len(sampleMonths))
	for _, row := range rows {
		for i, v := range row.values {
			sums[i] += v
		}
	}
	return sums
}

func absValues(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		if v < 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}

func valueRow(name string, values []int64) []string {
	row := []string{"", name}
	for _, v := range values {
		row = append(row, formatRupees(v))
	}
	return row
}

// formatRupees renders a cell the way the tracker sheet does.
func formatRupees(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + "₹" + strings.Join(parts, ",")
}
