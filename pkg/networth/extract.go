package networth

import "strings"

// extractOptions tweaks row extraction per category.
type extractOptions struct {
	// absolute coerces every value to its magnitude. Debt rows carry an
	// inconsistent sign in the source, so debt is recorded as magnitude.
	absolute bool
}

// ExtractLineItems walks the given row range, reading the name cell and
// one value per data column. Rows with a blank name are skipped, and a
// row makes it into the result only if at least one value is strictly
// positive; an all-zero row is an account with no recorded history.
func (e *Engine) ExtractLineItems(grid Grid, rows RowRange) []LineItem {
	return e.extractLineItems(grid, rows, extractOptions{})
}

// ExtractDebtItems extracts debt rows, coercing values to magnitudes.
func (e *Engine) ExtractDebtItems(grid Grid, rows RowRange) []LineItem {
	return e.extractLineItems(grid, rows, extractOptions{absolute: true})
}

func (e *Engine) extractLineItems(grid Grid, rows RowRange, opts extractOptions) []LineItem {
	s := e.schema
	var items []LineItem
	for row := rows.Start; row < rows.End; row++ {
		name := strings.TrimSpace(grid.Cell(row, s.NameCol))
		if name == "" {
			continue
		}
		values := make([]Amount, 0, s.DataColEnd-s.DataColStart)
		hasPositive := false
		for col := s.DataColStart; col < s.DataColEnd; col++ {
			v := ParseAmount(grid.Cell(row, col))
			if opts.absolute {
				v = v.Abs()
			}
			if v.IsPositive() {
				hasPositive = true
			}
			values = append(values, v)
		}
		if !hasPositive {
			continue
		}
		items = append(items, LineItem{Name: name, Values: values})
	}
	return items
}
