package store

import "context"

// RunAsUser wraps ctx with the acting user and calls fn inside the provided TxRunner
// the runner's begin hooks read the user back from ctx to scope the tx
func RunAsUser(ctx context.Context, tx TxRunner, userID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithUser(ctx, userID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

// RunAsAdmin marks ctx as elevated and calls fn inside the provided TxRunner
func RunAsAdmin(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithAdmin(ctx)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
