// Package modkit composes API modules from shared deps and build options
package modkit

import "healthdash/internal/modkit/module"

// Module is the common surface for API modules that mount routes and expose ports
type Module = module.Module
