// Package dbx holds the small database plumbing shared by the client's
// repositories: DBTX, the query interface both *sql.DB and *sql.Tx satisfy,
// and WithTx for multi-statement writes that must land together.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories query through. A
// repository constructed over a *sql.Tx takes part in that transaction
// without knowing it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use (the profile snapshot writes several prefs keys as one unit):
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    repo := prefs.NewSQLiteRepository(tx)
//	    if err := repo.Set(ctx, prefs.KeyProfileID, id); err != nil {
//	        return err
//	    }
//	    return repo.Set(ctx, prefs.KeyProfileEmail, email)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
