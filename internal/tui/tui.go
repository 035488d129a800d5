package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

// RunDashboard starts the dashboard program.
func RunDashboard(api DashboardAPI) error {
	p := tea.NewProgram(NewDashboardModel(api), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunShop starts the shop program.
func RunShop(checkout *shop.Checkout) error {
	p := tea.NewProgram(NewShopModel(checkout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
