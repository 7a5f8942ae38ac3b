package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code, constraint, msg string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		ConstraintName: constraint,
		Message:        msg,
	}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23514", ErrorCodeRangeConstraint}, // check constraint
		{"22003", ErrorCodeRangeConstraint}, // numeric out of range
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"42501", ErrorCodeDB}, // rls or privilege denial is a store failure, not a caller one
		{"23502", ErrorCodeDB},
		{"23505", ErrorCodeDB},
		{"22P02", ErrorCodeDB},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code, "", ""))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgresKeepsStoreMessage(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}

	raw := pg("23514", "daily_entries_energy_check",
		`new row for relation "daily_entries" violates check constraint "daily_entries_energy_check"`)
	err := FromPostgres(fmt.Errorf("exec: %w", raw), "daily_entries.upsert")

	e, ok := As(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Code() != ErrorCodeRangeConstraint {
		t.Fatalf("code = %v, want RangeConstraint", e.Code())
	}
	if e.Message() != raw.Message {
		t.Fatalf("message = %q, want store text", e.Message())
	}
	if e.Op() != "daily_entries.upsert" {
		t.Fatalf("op = %q", e.Op())
	}
	if ConstraintName(err) != "daily_entries_energy_check" {
		t.Fatalf("ConstraintName = %q", ConstraintName(err))
	}
	if ConstraintName(stderrs.New("x")) != "" {
		t.Fatalf("ConstraintName of foreign error should be empty")
	}

	plain := FromPostgres(stderrs.New("conn refused"), "checkin.upsert")
	if CodeOf(plain) != ErrorCodeDB {
		t.Fatalf("non-pg errors should map to DB, got %v", CodeOf(plain))
	}
}
