// Package modkit provides module wiring and core deps
package modkit

import (
	"healthdash/internal/modkit/repokit"
	"healthdash/internal/platform/config"
	"healthdash/internal/platform/logger"
	"healthdash/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is the user scoped runner, Admin bypasses row level security
	PG    repokit.TxRunner
	Admin repokit.TxRunner

	// optional, nil when disabled
	CH  store.Clickhouse
	RDS store.Redis
}

// Pingers returns the named readiness checks for every configured seam
func (d Deps) Pingers() map[string]store.Pinger {
	out := map[string]store.Pinger{}
	add := func(name string, v any) {
		if p, ok := v.(store.Pinger); ok && p != nil {
			out[name] = p
		}
	}
	add("pg", d.PG)
	add("pg_admin", d.Admin)
	add("ch", d.CH)
	add("redis", d.RDS)
	return out
}
