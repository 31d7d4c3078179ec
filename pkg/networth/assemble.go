package networth

import "strings"

const subtotalTolerance = 0.01

// AssembleEntries turns a grid into the ordered net-worth series. Date
// headers are read once from the header row; columns with a blank
// header are skipped, and a column whose net-worth cell parses to a
// non-positive number is treated as "period not yet populated" and
// skipped entirely. Output order is the grid's column order.
//
// Both assembly modes share one extraction pass: SnapshotMode re-slices
// each line item's value at the entry's own column, FullHistoryMode
// attaches the whole history to every entry.
func (e *Engine) AssembleEntries(grid Grid, mode AssembleMode) ([]NetWorthEntry, error) {
	s := e.schema
	if err := s.Validate(grid); err != nil {
		return nil, err
	}

	bank := e.ExtractLineItems(grid, s.BankRows)
	investments := e.ExtractLineItems(grid, s.InvestmentRows)
	otherAssets := e.ExtractLineItems(grid, s.OtherAssetRows)
	debt := e.ExtractDebtItems(grid, s.DebtRows)

	var entries []NetWorthEntry
	for col := s.DataColStart; col < s.DataColEnd; col++ {
		date := strings.TrimSpace(grid.Cell(s.DateHeaderRow, col))
		if date == "" {
			continue
		}
		netWorth := ParseAmount(grid.Cell(s.NetWorthRow, col))
		if !netWorth.IsPositive() {
			continue
		}

		idx := col - s.DataColStart
		entry := NetWorthEntry{
			Date: date,
			BankAccounts: CategoryBlock{
				Items:    e.sliceItems(bank, idx, mode),
				Subtotal: ParseAmount(grid.Cell(s.BankSubtotalRow, col)),
			},
			Investments: CategoryBlock{
				Items:    e.sliceItems(investments, idx, mode),
				Subtotal: ParseAmount(grid.Cell(s.InvestmentSubtotalRow, col)),
			},
			OtherAssets: CategoryBlock{
				Items:    e.sliceItems(otherAssets, idx, mode),
				Subtotal: ParseAmount(grid.Cell(s.OtherAssetSubtotalRow, col)),
			},
			Debt: CategoryBlock{
				Items:    e.sliceItems(debt, idx, mode),
				Subtotal: ParseAmount(grid.Cell(s.TotalDebtRow, col)).Abs(),
			},
			TotalAssets: ParseAmount(grid.Cell(s.TotalAssetsRow, col)),
			TotalDebt:   ParseAmount(grid.Cell(s.TotalDebtRow, col)).Abs(),
			NetWorth:    netWorth,
		}
		e.checkSubtotal(date, "bank_accounts", bank, idx, entry.BankAccounts.Subtotal)
		e.checkSubtotal(date, "investments", investments, idx, entry.Investments.Subtotal)
		e.checkSubtotal(date, "other_assets", otherAssets, idx, entry.OtherAssets.Subtotal)
		e.checkSubtotal(date, "debt", debt, idx, entry.Debt.Subtotal)
		entries = append(entries, entry)
	}

	for i := range entries {
		if i > 0 {
			entries[i].MonthOverMonthChange = entries[i].NetWorth.Sub(entries[i-1].NetWorth)
		}
		if i >= 12 {
			entries[i].YearOverYearChange = entries[i].NetWorth.Sub(entries[i-12].NetWorth)
		}
	}
	return entries, nil
}

// sliceItems builds the per-entry item view for the requested mode.
func (e *Engine) sliceItems(items []LineItem, idx int, mode AssembleMode) []LineItem {
	if mode == FullHistoryMode {
		return items
	}
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		var v Amount
		if idx >= 0 && idx < len(item.Values) {
			v = item.Values[idx]
		}
		out = append(out, LineItem{Name: item.Name, Values: []Amount{v}})
	}
	return out
}

// checkSubtotal warns when a subtotal row diverges from the sum of its
// items at the given column. The subtotal stays authoritative either
// way; the grid is the source of truth and the engine never corrects it.
func (e *Engine) checkSubtotal(date, category string, items []LineItem, idx int, subtotal Amount) {
	var sum Amount
	for _, item := range items {
		if idx >= 0 && idx < len(item.Values) {
			sum = sum.Add(item.Values[idx].Abs())
		}
	}
	diff := subtotal.Abs().Sub(sum).Abs().Float()
	if diff > subtotalTolerance {
		e.logger.Warn("subtotal diverges from item sum",
			"date", date,
			"category", category,
			"subtotal", subtotal.Float(),
			"item_sum", sum.Float(),
		)
	}
}
