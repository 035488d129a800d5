package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []LineItem
		want  Totals
		gap   int64
	}{
		{
			name:  "empty cart still pays shipping",
			lines: nil,
			want:  Totals{ShippingCents: 999, TotalCents: 999},
			gap:   10000,
		},
		{
			name: "free shipping above 100",
			lines: []LineItem{
				{ProductID: 1, PriceCents: 7999, Quantity: 2},
				{ProductID: 6, PriceCents: 2499, Quantity: 1},
			},
			want: Totals{SubtotalCents: 18497, ShippingCents: 0, TaxCents: 1480, TotalCents: 19977, ItemCount: 3},
			gap:  0,
		},
		{
			name:  "exactly 100 still pays shipping",
			lines: []LineItem{{ProductID: 1, PriceCents: 5000, Quantity: 2}},
			want:  Totals{SubtotalCents: 10000, ShippingCents: 999, TaxCents: 800, TotalCents: 11799, ItemCount: 2},
			gap:   0,
		},
		{
			name:  "below threshold",
			lines: []LineItem{{ProductID: 3, PriceCents: 3499, Quantity: 1}},
			want:  Totals{SubtotalCents: 3499, ShippingCents: 999, TaxCents: 280, TotalCents: 4778, ItemCount: 1},
			gap:   6501,
		},
		{
			name:  "tax rounds to the cent",
			lines: []LineItem{{ProductID: 99, PriceCents: 1, Quantity: 1}, {ProductID: 98, PriceCents: 1855, Quantity: 1}},
			want:  Totals{SubtotalCents: 1856, ShippingCents: 999, TaxCents: 148, TotalCents: 3003, ItemCount: 2},
			gap:   8144,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.gap, got.FreeShippingGapCents())
		})
	}
}

func TestTaxCents_HalfUp(t *testing.T) {
	assert.Equal(t, int64(1), taxCents(7))  // 0.56
	assert.Equal(t, int64(0), taxCents(6))  // 0.48
	assert.Equal(t, int64(2), taxCents(19)) // 1.52
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{999, "$9.99"},
		{18497, "$184.97"},
		{-150, "-$1.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}
