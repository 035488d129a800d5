package shop

import (
	"context"
	"fmt"
)

// LineItem is one product in the cart with its quantity.
type LineItem struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// LineTotalCents is price times quantity.
func (l LineItem) LineTotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}

// Cart holds the line items and mirrors every change to its store.
type Cart struct {
	store CartStore
	lines []LineItem
}

// LoadCart restores the cart saved in store.
func LoadCart(ctx context.Context, store CartStore) (*Cart, error) {
	lines, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	c := &Cart{store: store}
	for _, l := range lines {
		if l.Quantity > 0 {
			c.lines = append(c.lines, l)
		}
	}
	return c, nil
}

// Add puts one unit of p into the cart.
func (c *Cart) Add(ctx context.Context, p Product) error {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return c.save(ctx)
		}
	}

	c.lines = append(c.lines, LineItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Category:   p.Category,
		PriceCents: p.PriceCents,
		Quantity:   1,
	})
	return c.save(ctx)
}

// Remove deletes the line of productID. Unknown ids are ignored.
func (c *Cart) Remove(ctx context.Context, productID int) error {
	out := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	c.lines = out
	return c.save(ctx)
}

// UpdateQuantity sets the quantity of a line; below 1 removes it.
func (c *Cart) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return c.Remove(ctx, productID)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
		}
	}
	return c.save(ctx)
}

// Clear empties the cart and drops the saved copy.
func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns how many units of productID are in the cart.
func (c *Cart) Quantity(productID int) int {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals computes subtotal, shipping, tax and total.
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.lines)
}

func (c *Cart) save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.Lines()); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
