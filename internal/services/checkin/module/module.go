// Package module wires check-in into the API using modkit
package module

import (
	modkit "healthdash/internal/modkit"
	"healthdash/internal/modkit/httpkit"
	"healthdash/internal/platform/net/middleware"

	chttp "healthdash/internal/services/checkin/http"
	crepo "healthdash/internal/services/checkin/repo"
	csvc "healthdash/internal/services/checkin/service"
)

// Module implements the check-in API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	ports any
	auth  middleware.AuthPort

	register func(httpkit.Router)

	svc csvc.Service
}

// Ports declares what the host must inject
type Ports struct {
	// Auth resolves the caller from the request, required
	Auth middleware.AuthPort
}

// New constructs the check-in module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("checkin"),
		modkit.WithPrefix("/checkin"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Auth == nil {
		panic("checkin module requires an Auth port")
	}

	cfg := FromConfig(deps.Cfg)

	so := csvc.Options{Location: cfg.Location}
	if a := crepo.NewCH(deps.CH); a != nil {
		so.Analytics = a
	}
	if e := crepo.NewRedis(deps.RDS); e != nil {
		so.Evictor = e
	}
	svc := csvc.New(deps.PG, deps.Admin, crepo.NewPG(), so)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		auth:   injected.Auth,
		svc:    svc,
	}
	m.ports = adaptCheckInPort{svc: svc}

	limit := middleware.RateLimit(middleware.RateLimitOptions{
		Every: cfg.every(),
		Burst: cfg.Burst,
	}, chttp.WriteRejection)

	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, m.auth, chttp.WriteRejection, func(pr httpkit.Router) {
			pr.Use(limit)
			chttp.Register(pr, m.svc)
		})
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
