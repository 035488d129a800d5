package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

type UserReadRepository struct {
	conn
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{conn{db: db, txGetter: txGetter}}
}

// GetByEmail returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT email, created_at
		FROM users
		WHERE email = ?
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, email)
	logQuery(query, []any{email}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	conn
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{conn{db: db, txGetter: txGetter}}
}

// Ensure creates the user if it does not exist yet.
func (r *UserWriteRepository) Ensure(ctx context.Context, email string) error {
	const query = `INSERT OR IGNORE INTO users (email) VALUES (?)`

	res, err := r.executor(ctx).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{email}, rowsAffected, err)

	return err
}

// Delete removes the user; clients and work entries go with it through
// ON DELETE CASCADE.
func (r *UserWriteRepository) Delete(ctx context.Context, email string) error {
	const query = `DELETE FROM users WHERE email = ?`

	res, err := r.executor(ctx).ExecContext(ctx, query, email)
	if err == nil {
		_, err = affected(res)
	}
	logQuery(query, []any{email}, nil, err)

	return err
}
