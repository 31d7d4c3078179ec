package networth

import (
	"fmt"
	"strings"
)

// Grid is the 2-D array of string cells representing one exported
// financial-tracking spreadsheet snapshot. Rows may be ragged; Cell
// returns "" for any out-of-range access.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RowRange identifies a half-open run of item rows [Start, End).
type RowRange struct {
	Start int
	End   int
}

// GridSchema maps semantic row/column names to fixed grid offsets.
// The layout is configuration agreed with the sheet's producer, not
// auto-detected; retargeting a different layout means supplying a
// different schema, not changing code.
type GridSchema struct {
	DateHeaderRow int
	NameCol       int
	DataColStart  int
	DataColEnd    int // exclusive

	BankRows        RowRange
	BankSubtotalRow int

	InvestmentRows        RowRange
	InvestmentSubtotalRow int

	OtherAssetRows        RowRange
	OtherAssetSubtotalRow int

	TotalAssetsRow int

	DebtRows     RowRange
	TotalDebtRow int

	NetWorthRow int
}

// anchorLabel pairs a row with a label fragment expected in its name cell.
type anchorLabel struct {
	row      int
	fragment string
}

// DefaultSchema returns the layout of the standard net-worth tracker sheet.
func DefaultSchema() GridSchema {
	return GridSchema{
		DateHeaderRow: 2,
		NameCol:       1,
		DataColStart:  2,
		DataColEnd:    15,

		BankRows:        RowRange{Start: 4, End: 8},
		BankSubtotalRow: 8,

		InvestmentRows:        RowRange{Start: 10, End: 16},
		InvestmentSubtotalRow: 16,

		OtherAssetRows:        RowRange{Start: 18, End: 22},
		OtherAssetSubtotalRow: 22,

		TotalAssetsRow: 24,

		DebtRows:     RowRange{Start: 26, End: 30},
		TotalDebtRow: 30,

		NetWorthRow: 32,
	}
}

func (s GridSchema) anchors() []anchorLabel {
	return []anchorLabel{
		{row: s.BankSubtotalRow, fragment: "bank"},
		{row: s.InvestmentSubtotalRow, fragment: "invest"},
		{row: s.OtherAssetSubtotalRow, fragment: "other"},
		{row: s.TotalAssetsRow, fragment: "total assets"},
		{row: s.TotalDebtRow, fragment: "total debt"},
		{row: s.NetWorthRow, fragment: "net worth"},
	}
}

// Validate checks that known labels appear at the schema's anchor rows
// before any adjacent data is trusted. A failed anchor means the sheet
// layout drifted from the configured offsets.
func (s GridSchema) Validate(grid Grid) error {
	if len(grid) == 0 {
		return NewError(ErrCodeInvalidInput, "grid is empty")
	}
	if s.DataColEnd <= s.DataColStart {
		return NewError(ErrCodeBadSchema, "data column range is empty")
	}
	for _, anchor := range s.anchors() {
		label := strings.ToLower(strings.TrimSpace(grid.Cell(anchor.row, s.NameCol)))
		if !strings.Contains(label, anchor.fragment) {
			return NewError(ErrCodeBadSchema,
				fmt.Sprintf("expected label containing %q at row %d, found %q", anchor.fragment, anchor.row, label))
		}
	}
	return nil
}
