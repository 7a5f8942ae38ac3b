// Package repokit binds check-in repos to the transaction a step runs in
// and scopes user transactions to the caller
package repokit

import "healthdash/internal/platform/store"

type (
	// Queryer is what a bound repo issues SQL through, a tx in every pipeline step
	Queryer = store.RowQuerier

	// TxRunner opens the user scoped or admin transaction a step runs in
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// Binder attaches a repo to the Queryer of the current tx
// every call on the bound repo shares that tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor into a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
