package repokit

import (
	"context"

	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/store"
)

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{inner: inner, hooks: hooks}
}

type hookedTx struct {
	inner TxRunner
	hooks []BeginHook
}

// Tx starts a tx on inner then runs all hooks before fn
func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// delegate so hookedTx satisfies TxRunner
func (h hookedTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h hookedTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h hookedTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}

// Ping forwards readiness checks when the inner runner supports them
func (h hookedTx) Ping(ctx context.Context) error {
	if p, ok := h.inner.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

const userScopeSQL = `SELECT set_config('request.jwt.claim.sub', $1, true)`

const userRoleSQL = `SELECT set_config('role', $1, true)`

// UserScope binds the tx to the acting user from store.WithUser so row level
// security policies see auth.uid(). role switches to a restricted db role when set
func UserScope(role string) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		uid, ok := store.UserID(ctx)
		if !ok {
			return perr.Unauthorizedf("user scoped tx without a user")
		}
		if _, err := q.Exec(ctx, userScopeSQL, uid); err != nil {
			return perr.FromPostgres(err, "repokit.user_scope")
		}
		if role == "" {
			return nil
		}
		if _, err := q.Exec(ctx, userRoleSQL, role); err != nil {
			return perr.FromPostgres(err, "repokit.user_role")
		}
		return nil
	}
}
