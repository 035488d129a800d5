package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

func newTestShop(t *testing.T) (ShopModel, *shop.MemoryStore) {
	t.Helper()
	store := shop.NewMemoryStore()
	cart, err := shop.LoadCart(context.Background(), store)
	require.NoError(t, err)
	checkout := shop.NewCheckout(cart, shop.WithClock(func() time.Time {
		return time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	}))
	return NewShopModel(checkout), store
}

// press feeds keys to the model and returns the last command.
func press(t *testing.T, m ShopModel, keys ...tea.KeyMsg) (ShopModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(ShopModel)
	}
	return m, cmd
}

func typeText(t *testing.T, m ShopModel, s string) ShopModel {
	t.Helper()
	m, _ = press(t, m, runeKey(s))
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestShopModel_BrowseAndFilter(t *testing.T) {
	m, _ := newTestShop(t)
	assert.Len(t, m.products, 12)
	assert.Contains(t, m.View(), "Wireless Bluetooth Headphones")

	m, _ = press(t, m, tab)
	assert.Equal(t, "Electronics", shop.Categories[m.category])
	assert.Len(t, m.products, 4)

	m, _ = press(t, m, runeKey("/"))
	assert.True(t, m.searching)
	m = typeText(t, m, "charging")
	assert.Len(t, m.products, 1)
	assert.Equal(t, "Wireless Charging Pad", m.products[0].Name)

	m, _ = press(t, m, enter)
	assert.False(t, m.searching)

	m = typeText(t, m, "/")
	m = typeText(t, m, "zzz")
	assert.Empty(t, m.products)
	assert.Contains(t, m.View(), "No products found")
}

func TestShopModel_CartEditing(t *testing.T) {
	m, store := newTestShop(t)

	m, _ = press(t, m, runeKey("a"), runeKey("a"), down, runeKey("a"))
	assert.Equal(t, 3, m.checkout.Cart().ItemCount())
	assert.Contains(t, m.notice, "Added Smart Watch Pro to cart")

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	m, _ = press(t, m, runeKey("c"))
	assert.Equal(t, shop.PageCart, m.checkout.Page())
	assert.Contains(t, m.View(), "Order summary")

	m, _ = press(t, m, runeKey("+"))
	assert.Equal(t, 3, m.checkout.Cart().Quantity(1))

	m, _ = press(t, m, runeKey("-"), runeKey("-"), runeKey("-"))
	assert.Equal(t, 0, m.checkout.Cart().Quantity(1))
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, runeKey("d"))
	assert.True(t, m.checkout.Cart().IsEmpty())
	assert.Contains(t, m.View(), "Your cart is empty")

	m, _ = press(t, m, enter)
	assert.Equal(t, shop.PageCart, m.checkout.Page())
	assert.Equal(t, "Your cart is empty", m.notice)

	m, _ = press(t, m, esc)
	assert.Equal(t, shop.PageProducts, m.checkout.Page())
}

func fillShipping(t *testing.T, m ShopModel, values ...string) ShopModel {
	t.Helper()
	for i, v := range values {
		if v != "" {
			m = typeText(t, m, v)
		}
		if i < len(values)-1 {
			m, _ = press(t, m, tab)
		}
	}
	return m
}

func TestShopModel_Checkout(t *testing.T) {
	m, store := newTestShop(t)

	m, _ = press(t, m, runeKey("a"), runeKey("a"))
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, down)
	}
	m, _ = press(t, m, runeKey("a"), runeKey("c"), enter)
	require.Equal(t, shop.PageCheckout, m.checkout.Page())

	// city left blank
	m = fillShipping(t, m, "Jane", "Doe", "jane@example.com", "", "1 Main St", "", "IL", "62701")
	m, _ = press(t, m, enter)
	assert.Equal(t, shop.PageCheckout, m.checkout.Page())
	assert.Equal(t, "Please fill in all required shipping fields", m.notice)
	assert.Equal(t, []string{"city"}, m.checkout.MissingShippingFields())

	// focus the city field and fill it
	for m.focus != 5 {
		m, _ = press(t, m, tab)
	}
	m = typeText(t, m, "Springfield")
	m, _ = press(t, m, enter)
	require.Equal(t, shop.PagePayment, m.checkout.Page())
	assert.Equal(t, shop.DefaultCountry, m.checkout.Shipping.Country)

	m = typeText(t, m, "4111111111111111")
	assert.Equal(t, "4111 1111 1111 1111", m.payment[cardNumberField].Value())

	// incomplete payment
	var cmd tea.Cmd
	m, cmd = press(t, m, enter)
	require.NotNil(t, cmd)
	assert.True(t, m.placing)
	updated, _ := m.Update(cmd())
	m = updated.(ShopModel)
	assert.False(t, m.placing)
	assert.Equal(t, "Please fill in all payment fields", m.notice)
	assert.Equal(t, shop.PagePayment, m.checkout.Page())

	m, _ = press(t, m, tab)
	m = typeText(t, m, "Jane Doe")
	m, _ = press(t, m, tab)
	m = typeText(t, m, "1228")
	assert.Equal(t, "12/28", m.payment[expiryField].Value())
	m, _ = press(t, m, tab)
	m = typeText(t, m, "123")

	m, cmd = press(t, m, enter)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(ShopModel)

	require.Equal(t, shop.PageConfirmation, m.checkout.Page())
	order := m.checkout.LastOrder()
	require.NotNil(t, order)
	assert.Equal(t, int64(19977), order.Totals.TotalCents)

	view := m.View()
	assert.Contains(t, view, "Order confirmed!")
	assert.Contains(t, view, order.Number)
	assert.Contains(t, view, "$199.77")
	assert.Contains(t, view, "•••• 1111")

	assert.True(t, m.checkout.Cart().IsEmpty())
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saved)

	m, _ = press(t, m, runeKey("n"))
	assert.Equal(t, shop.PageProducts, m.checkout.Page())
	assert.Equal(t, "", m.shipping[0].Value())
	assert.Equal(t, shop.DefaultCountry, m.shipping[8].Value())
	assert.Equal(t, "", m.payment[cardNumberField].Value())
}

func TestShopModel_BackKeepsForm(t *testing.T) {
	m, _ := newTestShop(t)
	m, _ = press(t, m, runeKey("a"), runeKey("c"), enter)
	m = typeText(t, m, "Jane")

	m, _ = press(t, m, esc)
	assert.Equal(t, shop.PageCart, m.checkout.Page())
	assert.Equal(t, "Jane", m.checkout.Shipping.FirstName)

	m, _ = press(t, m, enter)
	assert.Equal(t, shop.PageCheckout, m.checkout.Page())
	assert.Equal(t, "Jane", m.shipping[0].Value())
}

func TestShopModel_Quit(t *testing.T) {
	m, _ := newTestShop(t)
	_, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
