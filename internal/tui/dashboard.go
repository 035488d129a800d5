// Package tui provides the terminal user interface of the tracker client:
// a read-only dashboard and the shop checkout wizard.
package tui

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/freelance-tracker/internal/apiclient"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

const loadTimeout = 15 * time.Second

// DashboardAPI is the part of the API client the dashboard reads from.
type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	Defaulters(ctx context.Context) (*models.DefaultersResponse, error)
	DueDates(ctx context.Context) (*models.DueDates, error)
}

// dashboardLoadedMsg is sent when all three dashboard reads finished
type dashboardLoadedMsg struct {
	stats      *models.DashboardStats
	defaulters *models.DefaultersResponse
	due        *models.DueDates
	err        error
}

// DashboardModel shows time stats, defaulters and recent activity.
type DashboardModel struct {
	api    DashboardAPI
	styles Styles
	keys   KeyMap

	width   int
	height  int
	loading bool
	err     error

	// loginRequired is set when the server rejected the stored email
	loginRequired bool

	stats      *models.DashboardStats
	defaulters *models.DefaultersResponse
	due        *models.DueDates
}

// NewDashboardModel creates a dashboard reading from api.
func NewDashboardModel(api DashboardAPI) DashboardModel {
	return DashboardModel{
		api:     api,
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
		loading: true,
	}
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return m.load()
}

// load fetches stats, defaulters and due dates concurrently. The first
// failure cancels the other requests.
func (m DashboardModel) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		var msg dashboardLoadedMsg
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.stats, err = api.DashboardStats(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.defaulters, err = api.Defaulters(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.due, err = api.DueDates(ctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh) && !m.loading:
			m.loading = true
			return m, m.load()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.loginRequired = errors.Is(msg.err, apiclient.ErrUnauthorized)
		if msg.err == nil {
			m.stats = msg.stats
			m.defaulters = msg.defaulters
			m.due = msg.due
		}
	}

	return m, nil
}

// View implements tea.Model
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Freelance Tracker"))
	b.WriteString(" ")
	b.WriteString(m.styles.Subtitle.Render("dashboard"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("\nLoading...\n")
	case m.loginRequired:
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Login required. Run `client login <email>` and try again."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	default:
		m.renderStats(&b)
		m.renderDefaulters(&b)
		m.renderDueDates(&b)
	}

	b.WriteString(m.styles.StatusBar.Render(strings.Join([]string{
		m.styles.keyHelp("r", "refresh"),
		m.styles.keyHelp("q", "quit"),
	}, "  ")))

	return m.styles.App.Render(b.String())
}

func (m DashboardModel) renderStatLine(b *strings.Builder, label, value string) {
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("  %-16s", label)))
	b.WriteString(m.styles.StatValue.Render(value))
	b.WriteString("\n")
}

func (m DashboardModel) renderStats(b *strings.Builder) {
	if m.stats == nil {
		return
	}
	ts := m.stats.TimeStats

	b.WriteString(m.styles.Section.Render("Time"))
	b.WriteString("\n")
	m.renderStatLine(b, "Today", formatHours(ts.HoursToday))
	m.renderStatLine(b, "Last 7 days", formatHours(ts.HoursThisWeek))
	m.renderStatLine(b, "Last 30 days", formatHours(ts.HoursThisMonth))

	b.WriteString(m.styles.Section.Render("Summary"))
	b.WriteString("\n")
	m.renderStatLine(b, "Clients", fmt.Sprintf("%d", m.stats.Summary.TotalClients))
	m.renderStatLine(b, "Entries", fmt.Sprintf("%d", m.stats.Summary.TotalEntries))
}

func (m DashboardModel) renderDefaulters(b *strings.Builder) {
	if m.defaulters == nil {
		return
	}

	b.WriteString(m.styles.Section.Render(fmt.Sprintf("No work in 7 days (%d)", m.defaulters.Count)))
	b.WriteString("\n")
	if len(m.defaulters.Defaulters) == 0 {
		b.WriteString(m.styles.Muted.Render("  Every client has recent work"))
		b.WriteString("\n")
		return
	}
	for _, d := range m.defaulters.Defaulters {
		last := "never"
		if d.LastEntryDate != nil {
			last = d.LastEntryDate.String()
		}
		since := ""
		if d.DaysSinceLastEntry != nil {
			since = fmt.Sprintf(" (%d %s ago)", *d.DaysSinceLastEntry, pluralize("day", *d.DaysSinceLastEntry))
		}
		fmt.Fprintf(b, "  %-24s %-10s%s  %s\n", truncate(d.Name, 24), last, since, formatHours(d.TotalHours))
	}
}

func (m DashboardModel) renderDueDates(b *strings.Builder) {
	if m.due == nil {
		return
	}

	b.WriteString(m.styles.Section.Render("Recent entries"))
	b.WriteString("\n")
	if len(m.due.RecentEntries) == 0 {
		b.WriteString(m.styles.Muted.Render("  Nothing logged this week"))
		b.WriteString("\n")
	}
	for _, e := range m.due.RecentEntries {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		fmt.Fprintf(b, "  %s  %-20s %6s  %s\n", e.Date, truncate(e.ClientName, 20), formatHours(e.Hours), truncate(desc, 40))
	}

	b.WriteString(m.styles.Section.Render("Client activity"))
	b.WriteString("\n")
	if len(m.due.UpcomingClients) == 0 {
		b.WriteString(m.styles.Muted.Render("  No clients yet"))
		b.WriteString("\n")
	}
	for _, c := range m.due.UpcomingClients {
		last := "never"
		if c.LastEntryDate != nil {
			last = c.LastEntryDate.String()
		}
		fmt.Fprintf(b, "  %-24s %-10s  %s in %d %s\n",
			truncate(c.Name, 24), last, formatHours(c.TotalHours), c.EntryCount, pluralize("entry", int(c.EntryCount)))
	}
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") && !strings.HasSuffix(word, "ay") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
