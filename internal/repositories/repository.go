package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/freelance-tracker/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// conn resolves the executor for a query: the request transaction when one
// is present, the pool otherwise. With a single pooled connection every
// query of a transactional request must go through the transaction.
type conn struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func (c conn) executor(ctx context.Context) sqlx.ExtContext {
	if c.txGetter != nil {
		if tx := c.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return c.db
}

// logQuery logs the query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("query failed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)
		return
	}
	logger.Log.Debugw("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// affected turns a zero-row result into sql.ErrNoRows.
func affected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, sql.ErrNoRows
	}
	return n, nil
}
