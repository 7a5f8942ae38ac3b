// Package store provides a unified interface to optional storage backends
package store

import (
	"context"
	"errors"
	"fmt"

	"healthdash/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// PG is the user scoped postgres seam, nil when disabled
	// callers wrap it with a begin hook that scopes each tx to the caller
	PG TxRunner

	// Admin is the elevated postgres seam; it shares PG's pool when no admin DSN is set
	Admin TxRunner

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse

	// RDS is the redis seam, nil when disabled
	RDS Redis
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is a tiny seam for columnar writes and queries
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Redis is the key/value seam; only what cache eviction needs
type Redis interface {
	Del(ctx context.Context, keys ...string) (int64, error)
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store{Log: o.log}

	if cfg.PG.Enabled {
		userPG, err := openPG(ctx, cfg.PG, cfg.PG.URL, "user", s)
		if err != nil {
			return nil, err
		}
		s.PG = userPG
		s.Admin = userPG

		if cfg.PG.AdminURL != "" && cfg.PG.AdminURL != cfg.PG.URL {
			adminPG, err := openPG(ctx, cfg.PG, cfg.PG.AdminURL, "admin", s)
			if err != nil {
				_ = s.Close(ctx)
				return nil, err
			}
			s.Admin = adminPG
		}
	}

	if cfg.CH.Enabled {
		chClient, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = chClient
	}

	if cfg.RDS.Enabled {
		rdsClient, err := openRedis(ctx, cfg.RDS, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.RDS = rdsClient
	}

	if o.guard {
		if err := s.Guard(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("store guard: %w", err)
		}
	}
	return s, nil
}

// Guard pings every configured seam and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	seams := []struct {
		name string
		v    any
	}{
		{"pg", s.PG},
		{"pg_admin", s.Admin},
		{"ch", s.CH},
		{"redis", s.RDS},
	}

	var errs []error
	for _, sm := range seams {
		if sm.v == nil {
			continue
		}
		p, ok := sm.v.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sm.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(ctx context.Context) error {
	var errs []error

	if s.RDS != nil {
		if e := s.RDS.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	if s.CH != nil {
		if e := s.CH.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	if s.Admin != nil && s.Admin != s.PG {
		if c, ok := s.Admin.(interface{ Close() error }); ok {
			if e := c.Close(); e != nil {
				errs = append(errs, e)
			}
		}
	}

	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
