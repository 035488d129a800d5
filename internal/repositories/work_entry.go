package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

const workEntrySelect = `
	SELECT we.id, we.client_id, c.name AS client_name, we.user_email, we.hours,
	       we.description, we.date, we.created_at, we.updated_at
	FROM work_entries we
	JOIN clients c ON c.id = we.client_id
`

// WorkEntryReadRepository handles work entry reads scoped to an owner.
type WorkEntryReadRepository struct {
	conn
}

func NewWorkEntryReadRepository(db *sqlx.DB, txGetter TxGetter) *WorkEntryReadRepository {
	return &WorkEntryReadRepository{conn{db: db, txGetter: txGetter}}
}

// List returns the user's entries, newest first, optionally only those of
// one client.
func (r *WorkEntryReadRepository) List(ctx context.Context, email string, clientID *int64) ([]models.WorkEntryDB, error) {
	query := workEntrySelect + ` WHERE we.user_email = ?`
	args := []any{email}
	if clientID != nil {
		query += ` AND we.client_id = ?`
		args = append(args, *clientID)
	}
	query += ` ORDER BY we.date DESC, we.id DESC`

	entries := []models.WorkEntryDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &entries, query, args...)
	logQuery(query, args, len(entries), err)

	return entries, err
}

// Get returns the entry or nil when it does not exist for this owner.
func (r *WorkEntryReadRepository) Get(ctx context.Context, email string, id int64) (*models.WorkEntryDB, error) {
	query := workEntrySelect + ` WHERE we.id = ? AND we.user_email = ?`

	var entry models.WorkEntryDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &entry, query, id, email)
	logQuery(query, []any{id, email}, entry.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// WorkEntryWriteRepository handles work entry writes scoped to an owner.
type WorkEntryWriteRepository struct {
	conn
}

func NewWorkEntryWriteRepository(db *sqlx.DB, txGetter TxGetter) *WorkEntryWriteRepository {
	return &WorkEntryWriteRepository{conn{db: db, txGetter: txGetter}}
}

// Create inserts an entry owned by email and returns its id.
func (r *WorkEntryWriteRepository) Create(ctx context.Context, email string, in models.WorkEntryInput) (int64, error) {
	const query = `
		INSERT INTO work_entries (client_id, user_email, hours, description, date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{in.ClientID, email, in.Hours, in.Description, in.Date}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)
	logQuery(query, args, id, err)

	return id, err
}

// Update overwrites the writable fields. It returns sql.ErrNoRows when the
// entry does not exist for this owner.
func (r *WorkEntryWriteRepository) Update(ctx context.Context, email string, id int64, in models.WorkEntryInput) error {
	const query = `
		UPDATE work_entries
		SET client_id = ?, hours = ?, description = ?, date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_email = ?
	`
	args := []any{in.ClientID, in.Hours, in.Description, in.Date, id, email}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err == nil {
		_, err = affected(res)
	}
	logQuery(query, args, nil, err)

	return err
}

// Delete removes the entry.
func (r *WorkEntryWriteRepository) Delete(ctx context.Context, email string, id int64) error {
	const query = `DELETE FROM work_entries WHERE id = ? AND user_email = ?`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, email)
	if err == nil {
		_, err = affected(res)
	}
	logQuery(query, []any{id, email}, nil, err)

	return err
}
