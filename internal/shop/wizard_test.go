package shop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func completeShipping() ShippingInfo {
	return ShippingInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
		Country:   DefaultCountry,
	}
}

func completePayment() PaymentInfo {
	return PaymentInfo{
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jane Doe",
		ExpiryDate: "12/28",
		CVV:        "123",
	}
}

func newTestCheckout(t *testing.T, opts ...CheckoutOption) (*Checkout, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	cart, err := LoadCart(context.Background(), store)
	require.NoError(t, err)
	return NewCheckout(cart, append([]CheckoutOption{WithClock(func() time.Time { return fixedNow })}, opts...)...), store
}

func TestCheckout_HappyPath(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := NewMockOrderPublisher(ctrl)
	c, store := newTestCheckout(t, WithPublisher(publisher))

	assert.Equal(t, PageProducts, c.Page())
	assert.Equal(t, DefaultCountry, c.Shipping.Country)

	require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 1)))
	require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 1)))
	require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 6)))

	c.ViewCart()
	require.NoError(t, c.ProceedToCheckout())
	assert.Equal(t, PageCheckout, c.Page())

	c.Shipping = completeShipping()
	require.NoError(t, c.ProceedToPayment())
	assert.Equal(t, PagePayment, c.Page())

	c.Payment = completePayment()

	var published Order
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o Order) error {
			published = o
			return nil
		})

	order, err := c.PlaceOrder(ctx)
	require.NoError(t, err)

	assert.Equal(t, PageConfirmation, c.Page())
	assert.True(t, strings.HasPrefix(order.Number, "ORD-"))
	assert.Len(t, order.Number, len("ORD-")+26)
	assert.Equal(t, fixedNow, order.PlacedAt)
	assert.Equal(t, Totals{SubtotalCents: 18497, ShippingCents: 0, TaxCents: 1480, TotalCents: 19977, ItemCount: 3}, order.Totals)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, "•••• 1111", order.CardMasked)
	assert.Equal(t, *order, published)
	assert.Same(t, order, c.LastOrder())

	assert.True(t, c.Cart().IsEmpty())
	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)

	require.NoError(t, c.StartNewOrder())
	assert.Equal(t, PageProducts, c.Page())
	assert.Equal(t, NewShippingInfo(), c.Shipping)
	assert.Equal(t, PaymentInfo{}, c.Payment)
}

func TestCheckout_PublishFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := NewMockOrderPublisher(ctrl)
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	c, _ := newTestCheckout(t, WithPublisher(publisher))
	require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 3)))
	c.ViewCart()
	require.NoError(t, c.ProceedToCheckout())
	c.Shipping = completeShipping()
	require.NoError(t, c.ProceedToPayment())
	c.Payment = completePayment()

	order, err := c.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, order.Number)
	assert.Equal(t, PageConfirmation, c.Page())
}

func TestCheckout_OrderNumbersAreUnique(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCheckout(t)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 8)))
		c.ViewCart()
		require.NoError(t, c.ProceedToCheckout())
		c.Shipping = completeShipping()
		require.NoError(t, c.ProceedToPayment())
		c.Payment = completePayment()

		order, err := c.PlaceOrder(ctx)
		require.NoError(t, err)
		assert.False(t, seen[order.Number])
		seen[order.Number] = true
		require.NoError(t, c.StartNewOrder())
	}
}

func TestCheckout_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart blocks checkout", func(t *testing.T) {
		c, _ := newTestCheckout(t)
		c.ViewCart()
		assert.ErrorIs(t, c.ProceedToCheckout(), ErrEmptyCart)
		assert.Equal(t, PageCart, c.Page())
	})

	t.Run("blank shipping fields block payment", func(t *testing.T) {
		c, _ := newTestCheckout(t)
		require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 2)))
		c.ViewCart()
		require.NoError(t, c.ProceedToCheckout())

		c.Shipping = completeShipping()
		c.Shipping.City = "   "
		c.Shipping.ZipCode = ""
		c.Shipping.Phone = ""

		err := c.ProceedToPayment()
		assert.ErrorIs(t, err, ErrShippingIncomplete)
		assert.Equal(t, []string{"city", "zipCode"}, c.MissingShippingFields())
		assert.Equal(t, PageCheckout, c.Page())
	})

	t.Run("missing payment field blocks order", func(t *testing.T) {
		c, _ := newTestCheckout(t)
		require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 2)))
		c.ViewCart()
		require.NoError(t, c.ProceedToCheckout())
		c.Shipping = completeShipping()
		require.NoError(t, c.ProceedToPayment())

		c.Payment = completePayment()
		c.Payment.CVV = ""

		_, err := c.PlaceOrder(ctx)
		assert.ErrorIs(t, err, ErrPaymentIncomplete)
		assert.Equal(t, PagePayment, c.Page())
		assert.False(t, c.Cart().IsEmpty())
		assert.Nil(t, c.LastOrder())
	})
}

func TestCheckout_Navigation(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCheckout(t)
	require.NoError(t, c.Cart().Add(ctx, mustProduct(t, 5)))

	assert.ErrorIs(t, c.Back(), ErrInvalidTransition)
	assert.ErrorIs(t, c.ProceedToCheckout(), ErrInvalidTransition)
	assert.ErrorIs(t, c.ProceedToPayment(), ErrInvalidTransition)
	assert.ErrorIs(t, c.StartNewOrder(), ErrInvalidTransition)
	_, err := c.PlaceOrder(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	c.ViewCart()
	require.NoError(t, c.ProceedToCheckout())
	c.Shipping = completeShipping()
	require.NoError(t, c.ProceedToPayment())

	require.NoError(t, c.Back())
	assert.Equal(t, PageCheckout, c.Page())
	require.NoError(t, c.Back())
	assert.Equal(t, PageCart, c.Page())
	require.NoError(t, c.Back())
	assert.Equal(t, PageProducts, c.Page())

	// header links work from anywhere in the flow
	c.ViewCart()
	require.NoError(t, c.ProceedToCheckout())
	c.GoToProducts()
	assert.Equal(t, PageProducts, c.Page())
	assert.Equal(t, "Jane", c.Shipping.FirstName)
}

func TestPage_String(t *testing.T) {
	assert.Equal(t, "products", PageProducts.String())
	assert.Equal(t, "confirmation", PageConfirmation.String())
	assert.Equal(t, "page(9)", Page(9).String())
}
