package shop

//go:generate mockgen -source=order.go -destination=order_mock.go -package=shop

import (
	"context"
	"time"
)

// ShippingInfo is the address form of the checkout page.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// DefaultCountry preselects the country field.
const DefaultCountry = "United States"

// NewShippingInfo returns an empty form with the default country.
func NewShippingInfo() ShippingInfo {
	return ShippingInfo{Country: DefaultCountry}
}

// PaymentInfo is the card form of the payment page.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Order is a placed order. Card details other than the last digits are never kept.
type Order struct {
	Number     string       `json:"orderNumber"`
	PlacedAt   time.Time    `json:"placedAt"`
	Lines      []LineItem   `json:"lines"`
	Totals     Totals       `json:"totals"`
	Shipping   ShippingInfo `json:"shipping"`
	CardMasked string       `json:"cardMasked"`
}

// OrderPublisher announces placed orders to other systems.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order Order) error
}
