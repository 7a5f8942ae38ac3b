package store

import (
	"context"
	"fmt"
	"time"

	chx "healthdash/internal/platform/store/ch"
	"healthdash/internal/platform/store/pg"
	"healthdash/internal/platform/store/rds"
)

// ping guardrails shared by every backend
const (
	maxAttempts    = 20
	pingTimeout    = 3 * time.Second
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// pingWithBackoff retries ping until it answers, ctx ends, or attempts run out
func pingWithBackoff(ctx context.Context, name string, ping func(context.Context) error) error {
	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = ping(toCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff = min(backoff*2, backoffCeiling)
		}
	}
	return fmt.Errorf("%s ping failed after %d attempts: %w", name, maxAttempts, lastErr)
}

// openPG opens one pool and wraps it with our sql adapter
// pool labels the pool in traces and application_name ("user", "admin")
func openPG(ctx context.Context, cfg PGConfig, url, pool string, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(s.Log, pool)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      url,
		MaxConns: cfg.MaxConns,
		SlowMs:   cfg.SlowQueryMs,
		AppName:  "healthdash-" + pool,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	// ping the pool directly so boot retries don't spam the sql trace
	if err := pingWithBackoff(ctx, "postgres "+pool, p.Pool.Ping); err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Info().Str("pool", pool).Msg("postgres ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	if err := pingWithBackoff(ctx, "clickhouse", c.Ping); err != nil {
		_ = c.Close()
		return nil, err
	}
	s.Log.Info().Msg("clickhouse ready")
	return newCHAdapter(c), nil
}

func openRedis(ctx context.Context, cfg RedisConfig, s *Store) (Redis, error) {
	c := rds.Open(rds.Config{Addr: cfg.Addr, DB: cfg.DB, Password: cfg.Password})
	if err := pingWithBackoff(ctx, "redis", c.Ping); err != nil {
		_ = c.Close()
		return nil, err
	}
	s.Log.Info().Str("addr", cfg.Addr).Msg("redis ready")
	return c, nil
}
