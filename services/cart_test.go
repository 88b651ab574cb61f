package services

import "testing"

func sampleLine(id, qty int, price, agenciesPrice float64) CartLine {
	return CartLine{
		ID:            id,
		NameEN:        "Flower Pots Big",
		NameTA:        "பூச்சட்டி பெரியது",
		Qty:           qty,
		Price:         price,
		AgenciesPrice: agenciesPrice,
	}
}

func TestCartAddComputesAmounts(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 2, 33, 25))

	if cart.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", cart.Len())
	}
	line := cart.Lines()[0]
	if line.Amount != 66 {
		t.Errorf("Amount = %v, want 66", line.Amount)
	}
	if line.AgenciesAmount != 50 {
		t.Errorf("AgenciesAmount = %v, want 50", line.AgenciesAmount)
	}
}

func TestCartAddMergesSameID(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 2, 33, 25))
	cart.Add(sampleLine(101, 3, 33, 25))

	if cart.Len() != 1 {
		t.Fatalf("expected a single merged line, got %d", cart.Len())
	}
	line := cart.Lines()[0]
	if line.Qty != 5 {
		t.Errorf("Qty = %d, want 5", line.Qty)
	}
	if line.Amount != 165 {
		t.Errorf("Amount = %v, want 165", line.Amount)
	}
	if line.AgenciesAmount != 125 {
		t.Errorf("AgenciesAmount = %v, want 125", line.AgenciesAmount)
	}
}

// A merge must keep the unit prices captured at first add even when the
// incoming line carries different prices.
func TestCartMergeKeepsFirstPrices(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 2, 33, 25))
	cart.Add(sampleLine(101, 1, 99, 98))

	line := cart.Lines()[0]
	if line.Price != 33 {
		t.Errorf("Price = %v, want the original 33", line.Price)
	}
	if line.Amount != 99 { // 3 * 33
		t.Errorf("Amount = %v, want 99", line.Amount)
	}
	if line.AgenciesAmount != 75 { // 3 * 25
		t.Errorf("AgenciesAmount = %v, want 75", line.AgenciesAmount)
	}
}

func TestCartRemove(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 1, 33, 25))
	cart.Add(sampleLine(102, 1, 50, 40))
	cart.Add(sampleLine(103, 1, 10, 8))

	cart.Remove(102)

	if cart.Len() != 2 {
		t.Fatalf("expected 2 lines after remove, got %d", cart.Len())
	}
	// Survivors keep insertion order.
	if cart.Lines()[0].ID != 101 || cart.Lines()[1].ID != 103 {
		t.Errorf("order after remove = [%d %d], want [101 103]",
			cart.Lines()[0].ID, cart.Lines()[1].ID)
	}

	totals := cart.Totals()
	if totals.Customer != 43 {
		t.Errorf("Customer total = %v, want 43", totals.Customer)
	}
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 2, 33, 25))

	cart.Remove(999)

	if cart.Len() != 1 {
		t.Errorf("expected cart unchanged, got %d lines", cart.Len())
	}
	if cart.Totals().Customer != 66 {
		t.Errorf("Customer total = %v, want 66", cart.Totals().Customer)
	}
}

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []CartLine
		want  CartTotals
	}{
		{"empty cart", nil, CartTotals{}},
		{
			"single line",
			[]CartLine{sampleLine(101, 5, 33, 25)},
			CartTotals{Customer: 165, Agencies: 125, Profit: 40},
		},
		{
			"multiple lines",
			[]CartLine{
				sampleLine(101, 2, 33, 25),
				sampleLine(102, 4, 100, 80),
			},
			CartTotals{Customer: 466, Agencies: 370, Profit: 96},
		},
		{
			"zero priced line from a bad catalog field",
			[]CartLine{sampleLine(101, 3, 0, 0)},
			CartTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart Cart
			for _, line := range tt.lines {
				cart.Add(line)
			}
			got := cart.Totals()
			if got != tt.want {
				t.Errorf("Totals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Profit must reconcile exactly with the two grand totals.
func TestCartProfitReconciles(t *testing.T) {
	var cart Cart
	cart.Add(sampleLine(101, 3, 33.5, 27.25))
	cart.Add(sampleLine(102, 7, 12.75, 9.5))
	cart.Remove(101)
	cart.Add(sampleLine(103, 1, 250, 180))

	totals := cart.Totals()
	if totals.Profit != totals.Customer-totals.Agencies {
		t.Errorf("Profit %v != Customer %v - Agencies %v",
			totals.Profit, totals.Customer, totals.Agencies)
	}
}
