package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// DashboardReadRepository runs the read-only aggregation queries of the
// dashboard. Every query is scoped to one user.
type DashboardReadRepository struct {
	conn
}

func NewDashboardReadRepository(db *sqlx.DB) *DashboardReadRepository {
	return &DashboardReadRepository{conn{db: db}}
}

// SumHoursOn sums hours logged on exactly one day.
func (r *DashboardReadRepository) SumHoursOn(ctx context.Context, email string, day models.Date) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(hours), 0)
		FROM work_entries
		WHERE user_email = ? AND date = ?
	`
	return r.sum(ctx, query, email, day)
}

// SumHoursSince sums hours logged on or after day.
func (r *DashboardReadRepository) SumHoursSince(ctx context.Context, email string, day models.Date) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(hours), 0)
		FROM work_entries
		WHERE user_email = ? AND date >= ?
	`
	return r.sum(ctx, query, email, day)
}

func (r *DashboardReadRepository) sum(ctx context.Context, query, email string, day models.Date) (float64, error) {
	var total float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, email, day)
	logQuery(query, []any{email, day}, total, err)
	return total, err
}

// CountClients counts the clients owned by the user.
func (r *DashboardReadRepository) CountClients(ctx context.Context, email string) (int64, error) {
	const query = `SELECT COUNT(*) FROM clients WHERE user_email = ?`
	return r.count(ctx, query, email)
}

// CountEntries counts the work entries owned by the user.
func (r *DashboardReadRepository) CountEntries(ctx context.Context, email string) (int64, error) {
	const query = `SELECT COUNT(*) FROM work_entries WHERE user_email = ?`
	return r.count(ctx, query, email)
}

func (r *DashboardReadRepository) count(ctx context.Context, query, email string) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &n, query, email)
	logQuery(query, []any{email}, n, err)
	return n, err
}

// Defaulters returns the clients whose most recent entry is absent or dated
// before threshold. Clients that never had an entry come first.
func (r *DashboardReadRepository) Defaulters(ctx context.Context, email string, threshold models.Date) ([]models.DefaulterRow, error) {
	const query = `
		SELECT c.id, c.name, c.description,
		       MAX(we.date) AS last_entry_date,
		       COALESCE(SUM(we.hours), 0) AS total_hours
		FROM clients c
		LEFT JOIN work_entries we ON c.id = we.client_id
		WHERE c.user_email = ?
		GROUP BY c.id, c.name, c.description
		HAVING last_entry_date IS NULL OR last_entry_date < ?
		ORDER BY last_entry_date ASC NULLS FIRST, c.id ASC
	`

	rows := []models.DefaulterRow{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, email, threshold)
	logQuery(query, []any{email, threshold}, len(rows), err)

	return rows, err
}

// RecentEntries returns up to limit entries dated on or after since, newest
// first, with their client name.
func (r *DashboardReadRepository) RecentEntries(ctx context.Context, email string, since models.Date, limit int) ([]models.RecentEntry, error) {
	const query = `
		SELECT we.id, we.client_id, we.hours, we.description, we.date,
		       we.created_at, c.name AS client_name
		FROM work_entries we
		JOIN clients c ON we.client_id = c.id
		WHERE we.user_email = ? AND we.date >= ?
		ORDER BY we.date DESC, we.id DESC
		LIMIT ?
	`

	entries := []models.RecentEntry{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &entries, query, email, since, limit)
	logQuery(query, []any{email, since, limit}, len(entries), err)

	return entries, err
}

// ClientActivity returns up to limit clients ordered by their latest entry
// date, clients without entries last.
func (r *DashboardReadRepository) ClientActivity(ctx context.Context, email string, limit int) ([]models.ClientActivity, error) {
	const query = `
		SELECT c.id, c.name, c.description,
		       MAX(we.date) AS last_entry_date,
		       COALESCE(SUM(we.hours), 0) AS total_hours,
		       COUNT(we.id) AS entry_count
		FROM clients c
		LEFT JOIN work_entries we ON c.id = we.client_id
		WHERE c.user_email = ?
		GROUP BY c.id, c.name, c.description
		ORDER BY last_entry_date DESC NULLS LAST, c.id ASC
		LIMIT ?
	`

	clients := []models.ClientActivity{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &clients, query, email, limit)
	logQuery(query, []any{email, limit}, len(clients), err)

	return clients, err
}
