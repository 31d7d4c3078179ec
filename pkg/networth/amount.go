package networth

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal for monetary values.
// JSON marshaling outputs a float64 number (compatible with frontend),
// while internal arithmetic uses precise decimal operations.
type Amount struct {
	decimal.Decimal
}

// MarshalJSON outputs as a JSON number (not a string).
func (a Amount) MarshalJSON() ([]byte, error) {
	f, _ := a.Round(4).Float64()
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// NewAmount creates an Amount from a float64.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// NewAmountFromInt creates an Amount from an int64.
func NewAmountFromInt(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	f, _ := a.Float64()
	return f
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.Decimal.IsPositive()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{a.Decimal.Abs()}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// amountReplacer strips currency symbols, thousands separators and
// quoting characters before numeric parsing. It deliberately leaves a
// leading minus sign intact.
var amountReplacer = strings.NewReplacer(
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
	",", "",
	"\"", "",
	"'", "",
	" ", "",
	" ", "",
)

// ParseAmount parses a single localized currency cell into an Amount.
// Empty cells and cells that fail numeric parsing yield zero; a bad cell
// is missing data, not an error. No rounding is applied.
func ParseAmount(cell string) Amount {
	cleaned := strings.TrimSpace(amountReplacer.Replace(cell))
	if cleaned == "" || cleaned == "-" {
		return Amount{}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}
