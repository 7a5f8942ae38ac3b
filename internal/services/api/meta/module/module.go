// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"healthdash/internal/core/version"
	modkit "healthdash/internal/modkit"
	"healthdash/internal/modkit/httpkit"
	"healthdash/internal/modkit/module"

	metahttp "healthdash/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		startedAt: time.Now(),
	}

	checks := map[string]metahttp.Pinger{}
	for name, p := range deps.Pingers() {
		checks[name] = p
	}

	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Checks:      checks,
			Modules:     module.Mounted,
		})
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string {
	if m.name == "" {
		return "meta"
	}
	return m.name
}

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
