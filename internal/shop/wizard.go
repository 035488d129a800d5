package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
)

// Page is a step of the checkout wizard.
type Page int

const (
	PageProducts Page = iota
	PageCart
	PageCheckout
	PagePayment
	PageConfirmation
)

func (p Page) String() string {
	switch p {
	case PageProducts:
		return "products"
	case PageCart:
		return "cart"
	case PageCheckout:
		return "checkout"
	case PagePayment:
		return "payment"
	case PageConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

var (
	ErrInvalidTransition  = errors.New("invalid page transition")
	ErrEmptyCart          = errors.New("your cart is empty")
	ErrShippingIncomplete = errors.New("please fill in all required shipping fields")
	ErrPaymentIncomplete  = errors.New("please fill in all payment fields")
)

// Checkout drives the wizard over a cart.
type Checkout struct {
	Shipping ShippingInfo
	Payment  PaymentInfo

	cart      *Cart
	page      Page
	publisher OrderPublisher
	now       func() time.Time
	lastOrder *Order
}

// CheckoutOption configures a Checkout.
type CheckoutOption func(*Checkout)

// WithPublisher announces placed orders through p.
func WithPublisher(p OrderPublisher) CheckoutOption {
	return func(c *Checkout) {
		c.publisher = p
	}
}

// WithClock sets the clock used for order numbers and timestamps.
func WithClock(now func() time.Time) CheckoutOption {
	return func(c *Checkout) {
		c.now = now
	}
}

// NewCheckout starts the wizard on the products page.
func NewCheckout(cart *Cart, opts ...CheckoutOption) *Checkout {
	c := &Checkout{
		Shipping: NewShippingInfo(),
		cart:     cart,
		page:     PageProducts,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Page returns the current page.
func (c *Checkout) Page() Page {
	return c.page
}

// Cart returns the cart being checked out.
func (c *Checkout) Cart() *Cart {
	return c.cart
}

// LastOrder returns the order placed last, if any.
func (c *Checkout) LastOrder() *Order {
	return c.lastOrder
}

// GoToProducts shows the catalog. Allowed from every page.
func (c *Checkout) GoToProducts() {
	c.page = PageProducts
}

// ViewCart shows the cart. Allowed from every page.
func (c *Checkout) ViewCart() {
	c.page = PageCart
}

// Back returns to the previous page of the linear flow.
func (c *Checkout) Back() error {
	switch c.page {
	case PageCart:
		c.page = PageProducts
	case PageCheckout:
		c.page = PageCart
	case PagePayment:
		c.page = PageCheckout
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, c.page)
	}
	return nil
}

// ProceedToCheckout moves from the cart to the shipping form.
func (c *Checkout) ProceedToCheckout() error {
	if c.page != PageCart {
		return fmt.Errorf("%w: checkout from %s", ErrInvalidTransition, c.page)
	}
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}
	c.page = PageCheckout
	return nil
}

// MissingShippingFields lists the required shipping fields left blank.
func (c *Checkout) MissingShippingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", c.Shipping.FirstName},
		{"lastName", c.Shipping.LastName},
		{"email", c.Shipping.Email},
		{"address", c.Shipping.Address},
		{"city", c.Shipping.City},
		{"state", c.Shipping.State},
		{"zipCode", c.Shipping.ZipCode},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ProceedToPayment moves from the shipping form to the payment form.
func (c *Checkout) ProceedToPayment() error {
	if c.page != PageCheckout {
		return fmt.Errorf("%w: payment from %s", ErrInvalidTransition, c.page)
	}
	if missing := c.MissingShippingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrShippingIncomplete, strings.Join(missing, ", "))
	}
	c.page = PagePayment
	return nil
}

func (c *Checkout) paymentComplete() bool {
	p := c.Payment
	return p.CardNumber != "" && p.CardName != "" && p.ExpiryDate != "" && p.CVV != ""
}

// PlaceOrder simulates the payment: it assigns an order number, empties the
// cart and shows the confirmation. A failed publish is logged only.
func (c *Checkout) PlaceOrder(ctx context.Context) (*Order, error) {
	if c.page != PagePayment {
		return nil, fmt.Errorf("%w: place order from %s", ErrInvalidTransition, c.page)
	}
	if !c.paymentComplete() {
		return nil, ErrPaymentIncomplete
	}

	placedAt := c.now()
	order := &Order{
		Number:     "ORD-" + ulid.MustNew(ulid.Timestamp(placedAt), ulid.DefaultEntropy()).String(),
		PlacedAt:   placedAt,
		Lines:      c.cart.Lines(),
		Totals:     c.cart.Totals(),
		Shipping:   c.Shipping,
		CardMasked: MaskCardNumber(c.Payment.CardNumber),
	}

	if err := c.cart.Clear(ctx); err != nil {
		return nil, err
	}

	if c.publisher != nil {
		if err := c.publisher.PublishOrder(ctx, *order); err != nil {
			logger.Log.Errorw("failed to publish order", "order", order.Number, "error", err)
		}
	}

	logger.Log.Infow("order placed", "order", order.Number, "total", order.Totals.TotalCents)
	c.lastOrder = order
	c.page = PageConfirmation
	return order, nil
}

// StartNewOrder resets both forms and returns to the catalog.
func (c *Checkout) StartNewOrder() error {
	if c.page != PageConfirmation {
		return fmt.Errorf("%w: new order from %s", ErrInvalidTransition, c.page)
	}
	c.Shipping = NewShippingInfo()
	c.Payment = PaymentInfo{}
	c.page = PageProducts
	return nil
}
