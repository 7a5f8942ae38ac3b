package store

import (
	"context"
	"errors"

	perr "healthdash/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// ExecOne runs a single row write. Touching no row, or more than one, is a DB error
// since every check-in write targets exactly one (user, day) or user keyed row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return perr.Newf(perr.ErrorCodeDB, "write affected %d rows, want 1", n)
	}
	return nil
}

// Scalar reads one column of one row into T, no row is perr.ErrNotFound
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	return One(ctx, q, func(row Row) (T, error) {
		var v T
		return v, row.Scan(&v)
	}, sql, args...)
}

// One maps a single row through scan, no row is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	v, err := scan(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, perr.ErrNotFound
	}
	return v, err
}
