package networth

import "testing"

func TestExtractLineItemsSkipsBlankNamesAndZeroRows(t *testing.T) {
	e := testEngine(t)
	grid := sampleGrid()

	bank := e.ExtractLineItems(grid, e.Schema().BankRows)
	if len(bank) != 3 {
		t.Fatalf("expected 3 bank items (Cash is all-zero), got %d", len(bank))
	}
	names := []string{"HDFC Bank", "ICICI Bank", "SBI Savings"}
	for i, want := range names {
		if bank[i].Name != want {
			t.Errorf("bank[%d]: got %q, want %q", i, bank[i].Name, want)
		}
	}

	other := e.ExtractLineItems(grid, e.Schema().OtherAssetRows)
	if len(other) != 3 {
		t.Fatalf("expected 3 other-asset items (blank row skipped), got %d", len(other))
	}
}

func TestExtractLineItemsValueOrder(t *testing.T) {
	e := testEngine(t)
	bank := e.ExtractLineItems(sampleGrid(), e.Schema().BankRows)

	hdfc := bank[0]
	want := []float64{150000, 160000, 155000, 170000, 180000, 190000}
	for i, w := range want {
		assertFloatEquals(t, hdfc.Values[i].Float(), w, "hdfc value order")
	}
	// Unpopulated trailing columns parse to zero, preserving column count.
	if len(hdfc.Values) != e.Schema().DataColEnd-e.Schema().DataColStart {
		t.Errorf("expected %d values, got %d", e.Schema().DataColEnd-e.Schema().DataColStart, len(hdfc.Values))
	}
}

func TestExtractDebtItemsAbsoluteValues(t *testing.T) {
	e := testEngine(t)
	debt := e.ExtractDebtItems(sampleGrid(), e.Schema().DebtRows)

	if len(debt) != 3 {
		t.Fatalf("expected 3 debt items (Personal Loan is all-zero), got %d", len(debt))
	}
	for _, item := range debt {
		for i, v := range item.Values {
			if v.Float() < 0 {
				t.Errorf("%s value %d is negative: %v", item.Name, i, v)
			}
		}
	}
	assertFloatEquals(t, debt[0].Values[0].Float(), 4500000, "home loan magnitude")
	assertFloatEquals(t, debt[2].Values[0].Float(), 45000, "credit card magnitude")
}

func TestExtractLineItemsPure(t *testing.T) {
	e := testEngine(t)
	grid := sampleGrid()
	first := e.ExtractLineItems(grid, e.Schema().InvestmentRows)
	second := e.ExtractLineItems(grid, e.Schema().InvestmentRows)
	if len(first) != len(second) {
		t.Fatalf("repeat extraction differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("item %d differs: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}
