//go:build integration_pg

package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"healthdash/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestOpen_Integration_UserAndAdminPools(t *testing.T) {
	dsn := testkit.StartPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	// a distinct admin DSN forces a second pool
	s, err := Open(ctx, Config{PG: PGConfig{
		Enabled:  true,
		URL:      dsn,
		AdminURL: dsn + "&application_name=admin",
		MaxConns: 2,
		LogSQL:   true,
	}}, WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	if s.Admin == s.PG {
		t.Fatalf("expected a separate admin pool")
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}

	if _, err := s.Admin.Exec(ctx, `CREATE TABLE adapter_t (id SERIAL PRIMARY KEY, val INT NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	// commit
	err = RunAsUser(ctx, s.PG, "u1", func(ctx context.Context, q RowQuerier) error {
		if uid, _ := UserID(ctx); uid != "u1" {
			t.Fatalf("user not on ctx: %q", uid)
		}
		return ExecOne(ctx, q, `INSERT INTO adapter_t (val) VALUES (10)`)
	})
	if err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	// rollback
	boom := errors.New("rollback")
	err = RunAsAdmin(ctx, s.Admin, func(ctx context.Context, q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO adapter_t (val) VALUES (20)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("rollback err = %v", err)
	}

	n, err := Scalar[int64](ctx, s.PG, `SELECT COUNT(*) FROM adapter_t`)
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v", n, err)
	}

	v, err := One(ctx, s.PG, func(r Row) (int, error) {
		var v int
		return v, r.Scan(&v)
	}, `SELECT val FROM adapter_t ORDER BY id`)
	if err != nil || v != 10 {
		t.Fatalf("One = %v, %v", v, err)
	}
}
