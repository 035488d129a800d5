package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

const clientColumns = `id, name, description, user_email, created_at, updated_at`

// ClientReadRepository handles client read operations scoped to an owner.
type ClientReadRepository struct {
	conn
}

func NewClientReadRepository(db *sqlx.DB, txGetter TxGetter) *ClientReadRepository {
	return &ClientReadRepository{conn{db: db, txGetter: txGetter}}
}

// List returns the user's clients ordered by name, each with totals over
// its work entries.
func (r *ClientReadRepository) List(ctx context.Context, email string) ([]models.ClientWithStats, error) {
	const query = `
		SELECT c.id, c.name, c.description, c.user_email, c.created_at, c.updated_at,
		       COALESCE(SUM(we.hours), 0) AS total_hours,
		       COUNT(we.id) AS entry_count,
		       MAX(we.date) AS last_entry_date
		FROM clients c
		LEFT JOIN work_entries we ON we.client_id = c.id
		WHERE c.user_email = ?
		GROUP BY c.id, c.name, c.description, c.user_email, c.created_at, c.updated_at
		ORDER BY c.name COLLATE NOCASE, c.id
	`

	clients := []models.ClientWithStats{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &clients, query, email)
	logQuery(query, []any{email}, len(clients), err)

	return clients, err
}

// Get returns the client or nil when it does not exist or belongs to
// another user.
func (r *ClientReadRepository) Get(ctx context.Context, email string, id int64) (*models.ClientDB, error) {
	const query = `SELECT ` + clientColumns + ` FROM clients WHERE id = ? AND user_email = ?`

	var client models.ClientDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &client, query, id, email)
	logQuery(query, []any{id, email}, client.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ClientWriteRepository handles client write operations scoped to an owner.
type ClientWriteRepository struct {
	conn
}

func NewClientWriteRepository(db *sqlx.DB, txGetter TxGetter) *ClientWriteRepository {
	return &ClientWriteRepository{conn{db: db, txGetter: txGetter}}
}

// Create inserts a client owned by email and returns the stored row.
func (r *ClientWriteRepository) Create(ctx context.Context, email string, in models.ClientInput) (*models.ClientDB, error) {
	const query = `
		INSERT INTO clients (name, description, user_email)
		VALUES (?, ?, ?)
		RETURNING ` + clientColumns

	args := []any{in.Name, in.Description, email}

	var client models.ClientDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &client, query, args...)
	logQuery(query, args, client.ID, err)

	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update overwrites name and description. It returns sql.ErrNoRows when the
// client does not exist for this owner.
func (r *ClientWriteRepository) Update(ctx context.Context, email string, id int64, in models.ClientInput) (*models.ClientDB, error) {
	const query = `
		UPDATE clients
		SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_email = ?
		RETURNING ` + clientColumns

	args := []any{in.Name, in.Description, id, email}

	var client models.ClientDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &client, query, args...)
	logQuery(query, args, client.ID, err)

	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Delete removes the client and, through ON DELETE CASCADE, its work entries.
func (r *ClientWriteRepository) Delete(ctx context.Context, email string, id int64) error {
	const query = `DELETE FROM clients WHERE id = ? AND user_email = ?`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, email)
	if err == nil {
		_, err = affected(res)
	}
	logQuery(query, []any{id, email}, nil, err)

	return err
}
