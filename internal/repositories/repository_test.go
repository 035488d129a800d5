package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/storage"
	"github.com/stretchr/testify/require"
)

// --- Setup SQLite ---
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	require.NoError(t, logger.Initialize("error"))

	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "tracker.db"), 1)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

// --- Helpers ---
func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *sqlx.DB, email string) {
	t.Helper()
	require.NoError(t, NewUserWriteRepository(db, nil).Ensure(context.Background(), email))
}

func seedClient(t *testing.T, db *sqlx.DB, email, name string) int64 {
	t.Helper()
	c, err := NewClientWriteRepository(db, nil).Create(context.Background(), email, models.ClientInput{Name: name})
	require.NoError(t, err)
	return c.ID
}

func seedEntry(t *testing.T, db *sqlx.DB, email string, clientID int64, hours float64, date string) int64 {
	t.Helper()
	id, err := NewWorkEntryWriteRepository(db, nil).Create(context.Background(), email, models.WorkEntryInput{
		ClientID: clientID,
		Hours:    hours,
		Date:     models.Date(date),
	})
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM `+table))
	return n
}
