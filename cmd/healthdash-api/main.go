// @title         Healthdash API
// @version       0.1.0
// @description   Daily check-in ingestion and service meta endpoints

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"healthdash/internal/adapters/auth/jwt"
	"healthdash/internal/core/version"
	"healthdash/internal/modkit/httpkit"
	"healthdash/internal/platform/config"
	"healthdash/internal/platform/logger"
	phttp "healthdash/internal/platform/net/http"
	"healthdash/internal/platform/store"

	"healthdash/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// postgres is required, clickhouse and redis turn on when configured.
	// every configured backend must answer before we take check-ins
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "healthdash"), store.WithLogger(*l), store.WithGuard())
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	verifier := jwt.New(jwt.FromConfig(apiCfg))

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Auth:           httpkit.NewPortFunc(verifier.Parse),
			Role:           apiCfg.MayString("AUTH_ROLE", "authenticated"),
			AllowedOrigins: origins(apiCfg.MayString("CORS_ORIGINS", "")),
			Timeout:        apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("addr", srv.Addr()).Str("version", version.Info().Version).Msg(version.Service + " listening")

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

func origins(csv string) []string {
	var out []string
	for _, o := range strings.Split(csv, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
