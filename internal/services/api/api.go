// Package api provides the HTTP API for the application
package api

import (
	"time"

	"healthdash/internal/platform/config"
	"healthdash/internal/platform/logger"
	phttp "healthdash/internal/platform/net/http"
	"healthdash/internal/platform/net/middleware"
	"healthdash/internal/platform/store"

	"healthdash/internal/modkit"
	"healthdash/internal/modkit/httpkit"
	"healthdash/internal/modkit/module"
	"healthdash/internal/modkit/repokit"
	"healthdash/internal/modkit/swaggerkit"

	metamod "healthdash/internal/services/api/meta/module"
	checkinmod "healthdash/internal/services/checkin/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Auth resolves the caller of protected routes
	Auth middleware.AuthPort
	// Role is set on every user scoped transaction, empty keeps the login role
	Role string

	AllowedOrigins []string
	Timeout        time.Duration

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules; user scoped tx carry the caller as a jwt claim
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    repokit.WithBeginHooks(opt.Store.PG, repokit.UserScope(opt.Role)),
		Admin: opt.Store.Admin,
		CH:    opt.Store.CH,
		RDS:   opt.Store.RDS,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	checkin := checkinmod.New(deps, modkit.WithPorts(checkinmod.Ports{Auth: opt.Auth}))
	mods := []module.Module{
		metamod.New(deps),
		checkin,
	}
	for _, m := range mods {
		module.Register(m)
		deps.Log.Info().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module mounted")
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		AllowedOrigins: opt.AllowedOrigins,
		Timeout:        opt.Timeout,
	})

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	// clients predating the versioned prefix post to /checkin directly
	httpkit.MountUnversioned(r, stack, checkin.MountRoutes)
}
