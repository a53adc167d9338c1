package store

import (
	"context"
	"errors"
	"fmt"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes raised by PostgreSQL on integrity failures.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

var _ UnitMeasureStore = (*PgStore)(nil)
var _ ProductStore = (*PgStore)(nil)
var _ SaleStore = (*PgStore)(nil)

// PgStore implements the inventory stores on top of PostgreSQL.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new PgStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// Ping reports whether the database is reachable.
func (p *PgStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// withTransaction runs fn in a transaction, rolling back on any error and committing otherwise.
// The connection is released on every path.
func (p *PgStore) withTransaction(ctx context.Context, fn func(qtx *db.Queries) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", inverrors.ErrTransactionBegin, err)
	}
	qtx := p.q.WithTx(tx)

	err = fn(qtx)
	if err != nil {
		return withRollbackError(err, tx.Rollback(ctx))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", inverrors.ErrTransactionCommit, err)
	}

	return nil
}

// withRollbackError keeps err as the primary cause and attaches the rollback failure, if any.
// An already closed transaction is not a rollback failure.
func withRollbackError(err, rbErr error) error {
	if rbErr == nil || errors.Is(rbErr, pgx.ErrTxClosed) {
		return err
	}
	return errors.Join(err, fmt.Errorf("%w: %w", inverrors.ErrTransactionRollback, rbErr))
}

// pgErrorCode returns the SQLSTATE of err, or an empty string if err did not come from PostgreSQL.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
