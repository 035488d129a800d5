package shop

const (
	// ShippingFeeCents is charged unless the subtotal is above FreeShippingOverCents.
	ShippingFeeCents      int64 = 999
	FreeShippingOverCents int64 = 10000
	// TaxPercent applies to the subtotal only.
	TaxPercent int64 = 8
)

// Totals are derived from the cart lines, never stored.
type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
	ItemCount     int   `json:"itemCount"`
}

// ComputeTotals sums the lines and applies shipping and tax.
func ComputeTotals(lines []LineItem) Totals {
	var t Totals
	for _, l := range lines {
		t.SubtotalCents += l.PriceCents * int64(l.Quantity)
		t.ItemCount += l.Quantity
	}

	if t.SubtotalCents <= FreeShippingOverCents {
		t.ShippingCents = ShippingFeeCents
	}
	t.TaxCents = taxCents(t.SubtotalCents)
	t.TotalCents = t.SubtotalCents + t.ShippingCents + t.TaxCents
	return t
}

// FreeShippingGapCents is what must still be added to ship for free.
func (t Totals) FreeShippingGapCents() int64 {
	if t.SubtotalCents > FreeShippingOverCents {
		return 0
	}
	return FreeShippingOverCents - t.SubtotalCents
}

// taxCents rounds half up to the cent.
func taxCents(subtotal int64) int64 {
	return (subtotal*TaxPercent + 50) / 100
}
