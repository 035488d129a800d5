package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

const storeTimeout = 5 * time.Second

type formField struct {
	label       string
	placeholder string
	charLimit   int
}

var shippingFields = []formField{
	{label: "First name *", placeholder: "John"},
	{label: "Last name *", placeholder: "Doe"},
	{label: "Email *", placeholder: "john@example.com"},
	{label: "Phone", placeholder: "(555) 123-4567"},
	{label: "Address *", placeholder: "123 Main St"},
	{label: "City *", placeholder: "New York"},
	{label: "State *", placeholder: "NY"},
	{label: "ZIP code *", placeholder: "10001"},
	{label: "Country", placeholder: shop.DefaultCountry},
}

var paymentFields = []formField{
	{label: "Card number", placeholder: "1234 5678 9012 3456", charLimit: 19},
	{label: "Name on card", placeholder: "John Doe"},
	{label: "Expiry", placeholder: "MM/YY", charLimit: 5},
	{label: "CVV", placeholder: "123", charLimit: 4},
}

const (
	cardNumberField = 0
	expiryField     = 2
)

func shippingValues(s shop.ShippingInfo) []string {
	return []string{s.FirstName, s.LastName, s.Email, s.Phone, s.Address, s.City, s.State, s.ZipCode, s.Country}
}

func shippingFromValues(v []string) shop.ShippingInfo {
	return shop.ShippingInfo{
		FirstName: v[0], LastName: v[1], Email: v[2], Phone: v[3],
		Address: v[4], City: v[5], State: v[6], ZipCode: v[7], Country: v[8],
	}
}

func paymentValues(p shop.PaymentInfo) []string {
	return []string{p.CardNumber, p.CardName, p.ExpiryDate, p.CVV}
}

func paymentFromValues(v []string) shop.PaymentInfo {
	return shop.PaymentInfo{CardNumber: v[0], CardName: v[1], ExpiryDate: v[2], CVV: v[3]}
}

func newInputs(fields []formField, values []string) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = ""
		if f.charLimit > 0 {
			ti.CharLimit = f.charLimit
		}
		ti.SetValue(values[i])
		inputs[i] = ti
	}
	return inputs
}

func inputValues(inputs []textinput.Model) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = in.Value()
	}
	return out
}

// orderPlacedMsg is sent when the simulated payment finished
type orderPlacedMsg struct {
	order *shop.Order
	err   error
}

// ShopModel drives the checkout wizard.
type ShopModel struct {
	checkout *shop.Checkout
	styles   Styles
	keys     KeyMap

	width  int
	height int

	// Products page
	category  int
	search    textinput.Model
	searching bool
	products  []shop.Product

	// cursor indexes products or cart lines depending on the page
	cursor int

	// Forms
	shipping []textinput.Model
	payment  []textinput.Model
	focus    int
	placing  bool

	notice string
	err    error
}

// NewShopModel creates the shop UI on top of checkout.
func NewShopModel(checkout *shop.Checkout) ShopModel {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "/ "

	m := ShopModel{
		checkout: checkout,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		search:   search,
		shipping: newInputs(shippingFields, shippingValues(checkout.Shipping)),
		payment:  newInputs(paymentFields, paymentValues(checkout.Payment)),
	}
	m.filter()
	return m
}

// Init implements tea.Model
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case orderPlacedMsg:
		m.placing = false
		if msg.err != nil {
			m.notice = validationNotice(msg.err)
			return m, nil
		}
		m.notice = ""
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.placing {
			return m, nil
		}

		switch m.checkout.Page() {
		case shop.PageProducts:
			return m.updateProducts(msg)
		case shop.PageCart:
			return m.updateCart(msg)
		case shop.PageCheckout:
			return m.updateShipping(msg)
		case shop.PagePayment:
			return m.updatePayment(msg)
		case shop.PageConfirmation:
			return m.updateConfirmation(msg)
		}
	}

	return m, nil
}

func (m ShopModel) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(m.products))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(m.products))
	case key.Matches(msg, m.keys.Category):
		m.category = (m.category + 1) % len(shop.Categories)
		m.filter()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Add):
		if len(m.products) == 0 {
			return m, nil
		}
		p := m.products[m.cursor]
		m.run(func(ctx context.Context) error { return m.checkout.Cart().Add(ctx, p) })
		if m.err == nil {
			m.notice = fmt.Sprintf("Added %s to cart", p.Name)
		}
	case key.Matches(msg, m.keys.Cart):
		m.checkout.ViewCart()
		m.cursor = 0
		m.notice = ""
	}
	return m, nil
}

func (m ShopModel) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.checkout.Cart().Lines()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(lines))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(lines))
	case key.Matches(msg, m.keys.Increase), key.Matches(msg, m.keys.Decrease):
		if len(lines) == 0 {
			return m, nil
		}
		l := lines[m.cursor]
		qty := l.Quantity + 1
		if key.Matches(msg, m.keys.Decrease) {
			qty = l.Quantity - 1
		}
		m.run(func(ctx context.Context) error {
			return m.checkout.Cart().UpdateQuantity(ctx, l.ProductID, qty)
		})
		m.clampCursor(len(m.checkout.Cart().Lines()))
	case key.Matches(msg, m.keys.Remove):
		if len(lines) == 0 {
			return m, nil
		}
		l := lines[m.cursor]
		m.run(func(ctx context.Context) error { return m.checkout.Cart().Remove(ctx, l.ProductID) })
		m.clampCursor(len(m.checkout.Cart().Lines()))
	case key.Matches(msg, m.keys.Select):
		if err := m.checkout.ProceedToCheckout(); err != nil {
			m.notice = validationNotice(err)
			return m, nil
		}
		m.notice = ""
		return m, m.focusForm(m.shipping, 0)
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Products):
		m.checkout.GoToProducts()
		m.cursor = 0
		m.notice = ""
	}
	return m, nil
}

func (m ShopModel) updateShipping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.checkout.Shipping = shippingFromValues(inputValues(m.shipping))
		if err := m.checkout.ProceedToPayment(); err != nil {
			m.notice = validationNotice(err)
			return m, nil
		}
		m.notice = ""
		m.blurForm(m.shipping)
		return m, m.focusForm(m.payment, 0)
	case key.Matches(msg, m.keys.Back):
		m.checkout.Shipping = shippingFromValues(inputValues(m.shipping))
		m.blurForm(m.shipping)
		m.notice = ""
		m.cursor = 0
		return m, m.back()
	case key.Matches(msg, m.keys.NextItem):
		return m, m.focusForm(m.shipping, (m.focus+1)%len(m.shipping))
	case key.Matches(msg, m.keys.PrevItem):
		return m, m.focusForm(m.shipping, (m.focus-1+len(m.shipping))%len(m.shipping))
	}

	var cmd tea.Cmd
	m.shipping[m.focus], cmd = m.shipping[m.focus].Update(msg)
	return m, cmd
}

func (m ShopModel) updatePayment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.checkout.Payment = paymentFromValues(inputValues(m.payment))
		m.placing = true
		m.notice = "Processing payment..."
		return m, m.placeOrder()
	case key.Matches(msg, m.keys.Back):
		m.checkout.Payment = paymentFromValues(inputValues(m.payment))
		m.blurForm(m.payment)
		m.notice = ""
		return m, tea.Batch(m.back(), m.focusForm(m.shipping, 0))
	case key.Matches(msg, m.keys.NextItem):
		return m, m.focusForm(m.payment, (m.focus+1)%len(m.payment))
	case key.Matches(msg, m.keys.PrevItem):
		return m, m.focusForm(m.payment, (m.focus-1+len(m.payment))%len(m.payment))
	}

	var cmd tea.Cmd
	m.payment[m.focus], cmd = m.payment[m.focus].Update(msg)

	switch m.focus {
	case cardNumberField:
		m.payment[m.focus].SetValue(shop.FormatCardNumber(m.payment[m.focus].Value()))
	case expiryField:
		m.payment[m.focus].SetValue(shop.FormatExpiryDate(m.payment[m.focus].Value()))
	}
	return m, cmd
}

func (m ShopModel) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NewOrder):
		if err := m.checkout.StartNewOrder(); err != nil {
			m.notice = validationNotice(err)
			return m, nil
		}
		m.shipping = newInputs(shippingFields, shippingValues(m.checkout.Shipping))
		m.payment = newInputs(paymentFields, paymentValues(m.checkout.Payment))
		m.focus = 0
		m.cursor = 0
		m.notice = ""
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// placeOrder runs the payment off the UI loop; key presses are ignored
// until orderPlacedMsg arrives.
func (m ShopModel) placeOrder() tea.Cmd {
	checkout := m.checkout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		order, err := checkout.PlaceOrder(ctx)
		return orderPlacedMsg{order: order, err: err}
	}
}

func (m *ShopModel) back() tea.Cmd {
	if err := m.checkout.Back(); err != nil {
		m.notice = validationNotice(err)
	}
	return nil
}

func (m *ShopModel) run(op func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	m.err = op(ctx)
}

func (m *ShopModel) focusForm(inputs []textinput.Model, idx int) tea.Cmd {
	m.blurForm(inputs)
	m.focus = idx
	return inputs[idx].Focus()
}

func (m *ShopModel) blurForm(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Blur()
	}
}

func (m *ShopModel) filter() {
	m.products = shop.Filter(shop.Catalog(), shop.Categories[m.category], m.search.Value())
	m.clampCursor(len(m.products))
}

func (m *ShopModel) moveCursor(delta, n int) {
	m.cursor += delta
	m.clampCursor(n)
}

func (m *ShopModel) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// validationNotice turns a guard failure into the message shown to the user.
func validationNotice(err error) string {
	switch {
	case errors.Is(err, shop.ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(err, shop.ErrShippingIncomplete):
		return "Please fill in all required shipping fields"
	case errors.Is(err, shop.ErrPaymentIncomplete):
		return "Please fill in all payment fields"
	default:
		return err.Error()
	}
}

// View implements tea.Model
func (m ShopModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.checkout.Page() {
	case shop.PageProducts:
		b.WriteString(m.renderProducts())
	case shop.PageCart:
		b.WriteString(m.renderCart())
	case shop.PageCheckout:
		b.WriteString(m.renderForm("Shipping information", shippingFields, m.shipping))
		b.WriteString(m.renderSummary())
	case shop.PagePayment:
		b.WriteString(m.renderForm("Payment details", paymentFields, m.payment))
		b.WriteString(m.styles.Muted.Render("This is a demo. No real payment is processed."))
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	case shop.PageConfirmation:
		b.WriteString(m.renderConfirmation())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return m.styles.App.Render(b.String())
}

func (m ShopModel) renderHeader() string {
	header := m.styles.Title.Render("ShopHub")
	if n := m.checkout.Cart().ItemCount(); n > 0 {
		header += " " + m.styles.Badge.Render(fmt.Sprintf("cart %d", n))
	}
	steps := []shop.Page{shop.PageCart, shop.PageCheckout, shop.PagePayment, shop.PageConfirmation}
	var parts []string
	for _, p := range steps {
		if p == m.checkout.Page() {
			parts = append(parts, m.styles.Selected.Render(p.String()))
		} else {
			parts = append(parts, m.styles.Muted.Render(p.String()))
		}
	}
	return header + "  " + strings.Join(parts, m.styles.Muted.Render(" › "))
}

func (m ShopModel) renderProducts() string {
	var b strings.Builder

	var cats []string
	for i, c := range shop.Categories {
		if i == m.category {
			cats = append(cats, m.styles.Selected.Render("["+c+"]"))
		} else {
			cats = append(cats, m.styles.Muted.Render(c))
		}
	}
	b.WriteString(strings.Join(cats, " "))
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.products) == 0 {
		b.WriteString(m.styles.Muted.Render("No products found"))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range m.products {
		style := m.styles.Normal
		marker := "  "
		if i == m.cursor {
			style = m.styles.Selected
			marker = "> "
		}
		line := fmt.Sprintf("%s%-32s %-12s ★ %.1f", marker, p.Name, p.Category, p.Rating)
		b.WriteString(style.Render(line))
		b.WriteString(" ")
		b.WriteString(m.styles.Price.Render(fmt.Sprintf("%9s", shop.FormatCents(p.PriceCents))))
		if qty := m.checkout.Cart().Quantity(p.ID); qty > 0 {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (%d in cart)", qty)))
		}
		b.WriteString("\n")
	}

	if len(m.products) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.products[m.cursor].Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ShopModel) renderCart() string {
	var b strings.Builder
	b.WriteString(m.styles.Section.Render("Shopping cart"))
	b.WriteString("\n")

	lines := m.checkout.Cart().Lines()
	if len(lines) == 0 {
		b.WriteString(m.styles.Muted.Render("Your cart is empty. Press p to browse products."))
		b.WriteString("\n")
		return b.String()
	}

	for i, l := range lines {
		style := m.styles.Normal
		marker := "  "
		if i == m.cursor {
			style = m.styles.Selected
			marker = "> "
		}
		line := fmt.Sprintf("%s%-32s %9s x %-3d", marker, l.Name, shop.FormatCents(l.PriceCents), l.Quantity)
		b.WriteString(style.Render(line))
		b.WriteString(m.styles.Price.Render(fmt.Sprintf("%10s", shop.FormatCents(l.LineTotalCents()))))
		b.WriteString("\n")
	}
	b.WriteString(m.renderSummary())
	return b.String()
}

func (m ShopModel) renderSummary() string {
	t := m.checkout.Cart().Totals()
	if m.checkout.Page() == shop.PageConfirmation {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Section.Render("Order summary"))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("  %-12s", label)))
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%10s", value)))
		b.WriteString("\n")
	}
	row(fmt.Sprintf("Subtotal (%d)", t.ItemCount), shop.FormatCents(t.SubtotalCents))
	if t.ShippingCents == 0 {
		row("Shipping", "FREE")
	} else {
		row("Shipping", shop.FormatCents(t.ShippingCents))
	}
	row("Tax (8%)", shop.FormatCents(t.TaxCents))
	row("Total", shop.FormatCents(t.TotalCents))
	if gap := t.FreeShippingGapCents(); gap > 0 && t.SubtotalCents > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  Add %s more for free shipping!", shop.FormatCents(gap))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ShopModel) renderForm(title string, fields []formField, inputs []textinput.Model) string {
	var b strings.Builder
	b.WriteString(m.styles.Section.Render(title))
	b.WriteString("\n")
	for i, f := range fields {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.LabelFocused
		}
		b.WriteString(label.Render(f.label))
		b.WriteString(" ")
		b.WriteString(inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m ShopModel) renderConfirmation() string {
	order := m.checkout.LastOrder()
	if order == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Success.Render("Order confirmed!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Order number: %s\n", order.Number))
	b.WriteString(fmt.Sprintf("Total:        %s\n", shop.FormatCents(order.Totals.TotalCents)))
	b.WriteString(fmt.Sprintf("Paid with:    %s\n", order.CardMasked))
	s := order.Shipping
	b.WriteString(fmt.Sprintf("Ship to:      %s %s, %s, %s, %s %s\n", s.FirstName, s.LastName, s.Address, s.City, s.State, s.ZipCode))
	if s.Email != "" {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("A confirmation was sent to %s", s.Email)))
		b.WriteString("\n")
	}
	return m.styles.Box.Render(b.String())
}

func (m ShopModel) renderStatusBar() string {
	var parts []string
	switch m.checkout.Page() {
	case shop.PageProducts:
		if m.searching {
			parts = append(parts, m.styles.keyHelp("enter/esc", "done"))
			break
		}
		parts = append(parts,
			m.styles.keyHelp("a", "add"),
			m.styles.keyHelp("tab", "category"),
			m.styles.keyHelp("/", "search"),
			m.styles.keyHelp("c", "cart"),
			m.styles.keyHelp("q", "quit"))
	case shop.PageCart:
		parts = append(parts,
			m.styles.keyHelp("+/-", "quantity"),
			m.styles.keyHelp("d", "remove"),
			m.styles.keyHelp("enter", "checkout"),
			m.styles.keyHelp("esc", "products"))
	case shop.PageCheckout:
		parts = append(parts,
			m.styles.keyHelp("tab", "next field"),
			m.styles.keyHelp("enter", "continue to payment"),
			m.styles.keyHelp("esc", "back"))
	case shop.PagePayment:
		parts = append(parts,
			m.styles.keyHelp("tab", "next field"),
			m.styles.keyHelp("enter", "place order"),
			m.styles.keyHelp("esc", "back"))
	case shop.PageConfirmation:
		parts = append(parts,
			m.styles.keyHelp("n", "new order"),
			m.styles.keyHelp("q", "quit"))
	}
	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}
