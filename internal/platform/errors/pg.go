package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the check-in writers branch on
const (
	pgErrCheckViolation         = "23514"
	pgErrNumericValueOutOfRange = "22003"

	pgErrReadOnlySQLTransaction = "25006"
	pgErrCannotConnectNow       = "57P03"
)

// ExtractPgError returns (*pgconn.PgError, true) if the error chain holds a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag
// !ok means err wasn't a PgError
// a value outside what a column accepts, by CHECK or by type range, is a RangeConstraint.
// every other SQLSTATE, privilege and not null denials included, is a plain DB failure
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrCheckViolation, pgErrNumericValueOutOfRange:
		return ErrorCodeRangeConstraint, true

	case pgErrReadOnlySQLTransaction, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and the store message.
// The message is the PgError text so callers can pass it through verbatim.
// If err is nil, returns nil
func FromPostgres(err error, op string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if pgErr, ok := ExtractPgError(err); ok {
		msg = pgErr.Message
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return &Error{code: code, msg: msg, op: op, orig: err}
}

// ConstraintName returns the violated constraint, if the error carries one
func ConstraintName(err error) string {
	if pgErr, ok := ExtractPgError(err); ok {
		return strings.TrimSpace(pgErr.ConstraintName)
	}
	return ""
}
