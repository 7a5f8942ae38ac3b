package store

import "healthdash/internal/platform/config"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled bool
	URL     string
	// AdminURL opens a second pool for elevated writes; empty reuses URL
	AdminURL    string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	DB       int
	Password string
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_* from root.
// Postgres is required; clickhouse and redis are enabled by the presence of their address
func ConfigFromEnv(root config.Conf, appName string) Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

	chURL := chCfg.MayString("DBURL", "")
	rdsAddr := rdsCfg.MayString("ADDR", "")

	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			AdminURL:    pgCfg.FirstString("", "ADMIN_DBURL", "DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: CHConfig{
			Enabled:    chURL != "",
			URL:        chURL,
			ClientName: appName,
			ClientTag:  "api",
		},
		RDS: RedisConfig{
			Enabled:  rdsAddr != "",
			Addr:     rdsAddr,
			DB:       rdsCfg.MayInt("DB", 0),
			Password: rdsCfg.MayString("PASSWORD", ""),
		},
	}
}
