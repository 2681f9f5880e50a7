package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unitPrice string
		expected  string
	}{
		{name: "whole quantities", quantity: "2", unitPrice: "100", expected: "200.00"},
		{name: "single unit", quantity: "1", unitPrice: "50", expected: "50.00"},
		{name: "fractional hours", quantity: "1.5", unitPrice: "80", expected: "120.00"},
		{name: "sub-cent product rounds to zero", quantity: "0.1", unitPrice: "0.01", expected: "0.00"},
		{name: "half cent rounds up", quantity: "0.5", unitPrice: "0.01", expected: "0.01"},
		{name: "zero quantity is best-effort", quantity: "0", unitPrice: "100", expected: "0.00"},
		{name: "negative quantity is best-effort", quantity: "-2", unitPrice: "100", expected: "-200.00"},
		{name: "repeating decimal rounds to cents", quantity: "0.333", unitPrice: "10", expected: "3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLineTotal(dec(tt.quantity), dec(tt.unitPrice))
			if got.StringFixed(2) != tt.expected {
				t.Errorf("ComputeLineTotal(%s, %s) = %s, want %s",
					tt.quantity, tt.unitPrice, got.StringFixed(2), tt.expected)
			}
		})
	}
}

func TestComputeInvoiceTotals(t *testing.T) {
	item := func(quantity, unitPrice string) *entity.LineItem {
		q, p := dec(quantity), dec(unitPrice)
		return &entity.LineItem{
			Quantity:   q,
			UnitPrice:  p,
			TotalPrice: ComputeLineTotal(q, p),
		}
	}

	t.Run("sums item totals and adds tax", func(t *testing.T) {
		items := []*entity.LineItem{
			item("2", "100"),
			item("1", "50"),
		}

		totals := ComputeInvoiceTotals(items, dec("10"))

		if totals.Subtotal.StringFixed(2) != "250.00" {
			t.Errorf("subtotal = %s, want 250.00", totals.Subtotal.StringFixed(2))
		}
		if totals.TotalAmount.StringFixed(2) != "260.00" {
			t.Errorf("total = %s, want 260.00", totals.TotalAmount.StringFixed(2))
		}
	})

	t.Run("empty item list yields tax-only total", func(t *testing.T) {
		totals := ComputeInvoiceTotals(nil, dec("15.50"))

		if !totals.Subtotal.IsZero() {
			t.Errorf("subtotal = %s, want 0", totals.Subtotal)
		}
		if totals.TotalAmount.StringFixed(2) != "15.50" {
			t.Errorf("total = %s, want 15.50", totals.TotalAmount.StringFixed(2))
		}
	})

	t.Run("nil items are skipped", func(t *testing.T) {
		items := []*entity.LineItem{
			item("1", "100"),
			nil,
			item("1", "25"),
		}

		totals := ComputeInvoiceTotals(items, decimal.Zero)

		if totals.Subtotal.StringFixed(2) != "125.00" {
			t.Errorf("subtotal = %s, want 125.00", totals.Subtotal.StringFixed(2))
		}
	})

	t.Run("tax is independent of items", func(t *testing.T) {
		items := []*entity.LineItem{item("3", "33.33")}

		totals := ComputeInvoiceTotals(items, dec("0.01"))

		if totals.Subtotal.StringFixed(2) != "99.99" {
			t.Errorf("subtotal = %s, want 99.99", totals.Subtotal.StringFixed(2))
		}
		if totals.TotalAmount.StringFixed(2) != "100.00" {
			t.Errorf("total = %s, want 100.00", totals.TotalAmount.StringFixed(2))
		}
	})
}

func TestComputeInvoiceTotalsProperties(t *testing.T) {
	item := func(quantity, unitPrice string) *entity.LineItem {
		q, p := dec(quantity), dec(unitPrice)
		return &entity.LineItem{
			Quantity:   q,
			UnitPrice:  p,
			TotalPrice: ComputeLineTotal(q, p),
		}
	}
	items := []*entity.LineItem{
		item("1.5", "80"),
		item("0.333", "10"),
		item("7", "19.99"),
		item("0.5", "0.01"),
	}
	sameTotals := func(a, b InvoiceTotals) bool {
		return a.Subtotal.Equal(b.Subtotal) && a.TotalAmount.Equal(b.TotalAmount)
	}

	t.Run("recomputation is idempotent", func(t *testing.T) {
		tax := dec("12.34")
		first := ComputeInvoiceTotals(items, tax)
		second := ComputeInvoiceTotals(items, tax)

		if !sameTotals(first, second) {
			t.Errorf("recomputed totals differ: %+v vs %+v", first, second)
		}
	})

	t.Run("item order does not change totals", func(t *testing.T) {
		reversed := make([]*entity.LineItem, len(items))
		for i, it := range items {
			reversed[len(items)-1-i] = it
		}
		tax := dec("5")

		forward := ComputeInvoiceTotals(items, tax)
		backward := ComputeInvoiceTotals(reversed, tax)

		if !sameTotals(forward, backward) {
			t.Errorf("totals depend on item order: %+v vs %+v", forward, backward)
		}
	})

	t.Run("untaxed totals add across split item lists", func(t *testing.T) {
		left, right := items[:2], items[2:]

		whole := ComputeInvoiceTotals(items, decimal.Zero)
		partA := ComputeInvoiceTotals(left, decimal.Zero)
		partB := ComputeInvoiceTotals(right, decimal.Zero)

		if !whole.Subtotal.Equal(partA.Subtotal.Add(partB.Subtotal)) {
			t.Errorf("subtotal %s != %s + %s",
				whole.Subtotal, partA.Subtotal, partB.Subtotal)
		}
		if !whole.TotalAmount.Equal(partA.TotalAmount.Add(partB.TotalAmount)) {
			t.Errorf("total %s != %s + %s",
				whole.TotalAmount, partA.TotalAmount, partB.TotalAmount)
		}
	})
}
