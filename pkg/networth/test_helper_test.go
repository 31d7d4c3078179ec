package networth

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// testEngine returns an Engine with the default schema and a silenced logger.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

// rupee renders v as a currency cell the way the tracker sheet does.
func rupee(v int64) string {
	if v < 0 {
		return "-₹" + groupDigits(-v)
	}
	return "₹" + groupDigits(v)
}

func groupDigits(v int64) string {
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// itemRow builds one grid row: blank, name, then formatted values for
// the six populated months.
func itemRow(name string, values ...int64) []string {
	row := []string{"", name}
	for _, v := range values {
		row = append(row, rupee(v))
	}
	return row
}

// sampleGrid is a tracker export with six populated months (Apr-Sep
// 2025), one header column whose net worth is still zero (Oct), and the
// remaining columns untouched.
func sampleGrid() Grid {
	return Grid{
		{"Net Worth Tracker"},
		{},
		{"", "Category", "Apr 2025", "May 2025", "Jun 2025", "Jul 2025", "Aug 2025", "Sep 2025", "Oct 2025"},
		{"", "ASSETS"},
		itemRow("HDFC Bank", 150000, 160000, 155000, 170000, 180000, 190000),
		itemRow("ICICI Bank", 100000, 105000, 110000, 115000, 120000, 125000),
		itemRow("SBI Savings", 50000, 50000, 50000, 50000, 50000, 50000),
		itemRow("Cash", 0, 0, 0, 0, 0, 0),
		itemRow("Bank Subtotal", 300000, 315000, 315000, 335000, 350000, 365000),
		{},
		itemRow("Indian Stocks", 800000, 850000, 830000, 900000, 950000, 1000000),
		itemRow("US Stocks", 400000, 420000, 440000, 460000, 480000, 500000),
		itemRow("Mutual Funds", 600000, 610000, 620000, 630000, 640000, 650000),
		itemRow("PPF", 300000, 305000, 310000, 315000, 320000, 325000),
		itemRow("EPF", 250000, 255000, 260000, 265000, 270000, 275000),
		itemRow("Crypto", 50000, 70000, 40000, 60000, 80000, 90000),
		itemRow("Investments Subtotal", 2400000, 2510000, 2500000, 2630000, 2740000, 2840000),
		{},
		itemRow("Home", 9000000, 9000000, 9000000, 9000000, 9000000, 9000000),
		itemRow("Car", 800000, 790000, 780000, 770000, 760000, 750000),
		itemRow("Gold", 350000, 360000, 370000, 380000, 390000, 400000),
		{},
		itemRow("Other Assets Subtotal", 10150000, 10150000, 10150000, 10150000, 10150000, 10150000),
		{},
		itemRow("Total Assets", 12850000, 12975000, 12965000, 13115000, 13240000, 13355000),
		{},
		itemRow("Home Loan", -4500000, -4450000, -4400000, -4350000, -4300000, -4250000),
		itemRow("Car Loan", 300000, 290000, 280000, 270000, 260000, 250000),
		itemRow("Credit Card", -45000, 30000, -25000, 40000, -35000, 20000),
		itemRow("Personal Loan", 0, 0, 0, 0, 0, 0),
		itemRow("Total Debt", 4845000, 4770000, 4705000, 4660000, 4595000, 4520000),
		{},
		itemRow("Net Worth", 8005000, 8205000, 8260000, 8455000, 8645000, 8835000, 0),
	}
}

// entryWithNetWorth builds a minimal entry for analytics tests.
func entryWithNetWorth(date string, netWorth float64) NetWorthEntry {
	return NetWorthEntry{Date: date, NetWorth: NewAmount(netWorth)}
}

// seriesOf builds entries from net-worth values, filling in the
// month-over-month changes the assembler would have computed.
func seriesOf(values ...float64) []NetWorthEntry {
	entries := make([]NetWorthEntry, 0, len(values))
	for i, v := range values {
		entry := entryWithNetWorth(fmt.Sprintf("M%d", i+1), v)
		if i > 0 {
			entry.MonthOverMonthChange = NewAmount(v - values[i-1])
		}
		entries = append(entries, entry)
	}
	return entries
}

// investmentItem builds a full-history line item from float values.
func investmentItem(name string, values ...float64) LineItem {
	amounts := make([]Amount, 0, len(values))
	for _, v := range values {
		amounts = append(amounts, NewAmount(v))
	}
	return LineItem{Name: name, Values: amounts}
}

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// assertFloatEquals fails the test when got and want differ by more than 0.001.
func assertFloatEquals(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if !floatEquals(got, want, 0.001) {
		t.Errorf("%s: got %.4f, want %.4f", msg, got, want)
	}
}

// assertNoError fails the test if err is not nil.
func assertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// assertError fails the test if err is nil.
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error but got nil", msg)
	}
}
