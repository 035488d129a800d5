// Package shop implements the demo storefront: a fixed catalog, a persisted
// cart with derived totals and the five-page checkout wizard.
package shop

import "strings"

// CategoryAll matches every product.
const CategoryAll = "All"

// Categories lists the catalog filters in display order.
var Categories = []string{CategoryAll, "Electronics", "Clothing", "Footwear", "Accessories", "Home", "Fitness"}

// Product is an item of the catalog. Prices are in cents.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"priceCents"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

var catalog = []Product{
	{ID: 1, Name: "Wireless Bluetooth Headphones", PriceCents: 7999, Category: "Electronics", Rating: 4.5, InStock: true,
		Description: "Premium noise-canceling headphones with 30-hour battery life and crystal-clear sound quality."},
	{ID: 2, Name: "Smart Watch Pro", PriceCents: 24999, Category: "Electronics", Rating: 4.8, InStock: true,
		Description: "Advanced fitness tracking, heart rate monitoring, and smartphone notifications on your wrist."},
	{ID: 3, Name: "Organic Cotton T-Shirt", PriceCents: 3499, Category: "Clothing", Rating: 4.3, InStock: true,
		Description: "Soft, breathable organic cotton tee available in multiple colors. Sustainably made."},
	{ID: 4, Name: "Running Shoes Elite", PriceCents: 12999, Category: "Footwear", Rating: 4.7, InStock: true,
		Description: "Lightweight running shoes with responsive cushioning and breathable mesh upper."},
	{ID: 5, Name: "Leather Messenger Bag", PriceCents: 8999, Category: "Accessories", Rating: 4.6, InStock: true,
		Description: "Handcrafted genuine leather bag with padded laptop compartment and adjustable strap."},
	{ID: 6, Name: "Stainless Steel Water Bottle", PriceCents: 2499, Category: "Home", Rating: 4.4, InStock: true,
		Description: "Double-wall insulated bottle keeps drinks cold for 24 hours or hot for 12 hours."},
	{ID: 7, Name: "Wireless Charging Pad", PriceCents: 3999, Category: "Electronics", Rating: 4.2, InStock: true,
		Description: "Fast wireless charging for all Qi-enabled devices with sleek minimalist design."},
	{ID: 8, Name: "Yoga Mat Premium", PriceCents: 4999, Category: "Fitness", Rating: 4.6, InStock: true,
		Description: "Extra thick non-slip yoga mat with alignment lines and carrying strap included."},
	{ID: 9, Name: "Ceramic Coffee Mug Set", PriceCents: 2999, Category: "Home", Rating: 4.5, InStock: true,
		Description: "Set of 4 handcrafted ceramic mugs, microwave and dishwasher safe."},
	{ID: 10, Name: "Sunglasses Classic", PriceCents: 5999, Category: "Accessories", Rating: 4.4, InStock: true,
		Description: "Polarized lenses with UV400 protection in a timeless frame design."},
	{ID: 11, Name: "Portable Bluetooth Speaker", PriceCents: 6999, Category: "Electronics", Rating: 4.5, InStock: true,
		Description: "Waterproof speaker with 360-degree sound and 20-hour playtime."},
	{ID: 12, Name: "Denim Jacket Classic", PriceCents: 7999, Category: "Clothing", Rating: 4.3, InStock: true,
		Description: "Timeless denim jacket with a comfortable relaxed fit and durable construction."},
}

// Catalog returns a copy of all products.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// FindProduct looks a product up by id.
func FindProduct(id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns the products of category whose name or description contains
// query, ignoring case. An empty category behaves like CategoryAll.
func Filter(products []Product, category, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
