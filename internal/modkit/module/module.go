// Package module holds the module contract and the registry of mounted modules
package module

import (
	phttp "healthdash/internal/platform/net/http"
)

// Module is one mountable slice of the API, meta or check-in
// it lives apart from modkit so a module can import this package without a cycle
type Module interface {
	// MountRoutes attaches the module under Prefix on r
	MountRoutes(r phttp.Router)
	// Ports is what the module offers other code, nil when nothing
	Ports() any
	Name() string
	Prefix() string
}
