package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Badge    lipgloss.Style

	// Sections
	Section   lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Muted     lipgloss.Style

	// Lists
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Price    lipgloss.Style

	// Forms
	Label        lipgloss.Style
	LabelFocused lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Messages
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Box     lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(secondary).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginTop(1),
		StatLabel: lipgloss.NewStyle().
			Foreground(muted),
		StatValue: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Normal: lipgloss.NewStyle(),
		Price: lipgloss.NewStyle().
			Foreground(success),

		Label: lipgloss.NewStyle().
			Foreground(muted).
			Width(14),
		LabelFocused: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Width(14),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			MarginTop(1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
	}
}

func (s Styles) keyHelp(key, desc string) string {
	return s.StatusKey.Render(key) + " " + s.StatusHelp.Render(desc)
}
