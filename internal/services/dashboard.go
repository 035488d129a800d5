package services

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	weekWindow         = 7 * 24 * time.Hour
	monthWindow        = 30 * 24 * time.Hour
	recentEntriesLimit = 10
	activeClientsLimit = 5
)

// DashboardReader defines the aggregation queries of the dashboard.
type DashboardReader interface {
	SumHoursOn(ctx context.Context, email string, day models.Date) (float64, error)
	SumHoursSince(ctx context.Context, email string, day models.Date) (float64, error)
	CountClients(ctx context.Context, email string) (int64, error)
	CountEntries(ctx context.Context, email string) (int64, error)
	Defaulters(ctx context.Context, email string, threshold models.Date) ([]models.DefaulterRow, error)
	RecentEntries(ctx context.Context, email string, since models.Date, limit int) ([]models.RecentEntry, error)
	ClientActivity(ctx context.Context, email string, limit int) ([]models.ClientActivity, error)
}

// DashboardService composes the dashboard views out of independent reads.
type DashboardService struct {
	reader DashboardReader
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService. A nil clock means time.Now.
func NewDashboardService(reader DashboardReader, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{reader: reader, now: now}
}

// Stats returns hours for today, the trailing week and the trailing month
// along with client and entry counts. The first failing read fails the call.
func (svc *DashboardService) Stats(ctx context.Context, email string) (*models.DashboardStats, error) {
	now := svc.now().UTC()
	today := models.DateOf(now)
	weekAgo := models.DateOf(now.Add(-weekWindow))
	monthAgo := models.DateOf(now.Add(-monthWindow))

	var stats models.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TimeStats.HoursToday, err = svc.reader.SumHoursOn(gctx, email, today)
		return err
	})
	g.Go(func() (err error) {
		stats.TimeStats.HoursThisWeek, err = svc.reader.SumHoursSince(gctx, email, weekAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.TimeStats.HoursThisMonth, err = svc.reader.SumHoursSince(gctx, email, monthAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.Summary.TotalClients, err = svc.reader.CountClients(gctx, email)
		return err
	})
	g.Go(func() (err error) {
		stats.Summary.TotalEntries, err = svc.reader.CountEntries(gctx, email)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to compute dashboard stats", "email", email, "err", err)
		return nil, err
	}

	stats.TimeStats.HoursToday = models.RoundHours(stats.TimeStats.HoursToday)
	stats.TimeStats.HoursThisWeek = models.RoundHours(stats.TimeStats.HoursThisWeek)
	stats.TimeStats.HoursThisMonth = models.RoundHours(stats.TimeStats.HoursThisMonth)

	return &stats, nil
}

// Defaulters returns the clients without any entry in the trailing week.
func (svc *DashboardService) Defaulters(ctx context.Context, email string) (*models.DefaultersResponse, error) {
	now := svc.now().UTC()

	rows, err := svc.reader.Defaulters(ctx, email, models.DateOf(now.Add(-weekWindow)))
	if err != nil {
		logger.Log.Errorw("failed to get defaulters", "email", email, "err", err)
		return nil, err
	}

	defaulters := make([]models.Defaulter, 0, len(rows))
	for _, row := range rows {
		defaulters = append(defaulters, models.Defaulter{
			ID:                 row.ID,
			Name:               row.Name,
			Description:        row.Description,
			LastEntryDate:      row.LastEntryDate,
			TotalHours:         models.RoundHours(row.TotalHours),
			DaysSinceLastEntry: daysSince(now, row.LastEntryDate),
		})
	}

	return &models.DefaultersResponse{
		Defaulters: defaulters,
		Count:      len(defaulters),
	}, nil
}

// daysSince counts whole days from midnight UTC of day to now; nil when there
// is no day or it cannot be parsed.
func daysSince(now time.Time, day *models.Date) *int {
	if day == nil || *day == "" {
		return nil
	}
	t, err := day.Time()
	if err != nil {
		return nil
	}
	days := int(now.Sub(t) / (24 * time.Hour))
	return &days
}

// DueDates returns recent entries of the trailing week and the most recently
// active clients.
func (svc *DashboardService) DueDates(ctx context.Context, email string) (*models.DueDates, error) {
	since := models.DateOf(svc.now().UTC().Add(-weekWindow))

	var out models.DueDates
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.RecentEntries, err = svc.reader.RecentEntries(gctx, email, since, recentEntriesLimit)
		return err
	})
	g.Go(func() (err error) {
		out.UpcomingClients, err = svc.reader.ClientActivity(gctx, email, activeClientsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to get due dates", "email", email, "err", err)
		return nil, err
	}

	if out.RecentEntries == nil {
		out.RecentEntries = []models.RecentEntry{}
	}
	if out.UpcomingClients == nil {
		out.UpcomingClients = []models.ClientActivity{}
	}

	return &out, nil
}
