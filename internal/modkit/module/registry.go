package module

import (
	"maps"
	"sync"
)

// mounted modules by name, read by the meta service endpoint
var (
	mu  sync.RWMutex
	reg = map[string]string{}
)

// Register records m as mounted under its prefix
func Register(m Module) {
	mu.Lock()
	reg[m.Name()] = m.Prefix()
	mu.Unlock()
}

// Mounted returns a copy of the registry, module name to prefix
func Mounted() map[string]string {
	mu.RLock()
	defer mu.RUnlock()
	return maps.Clone(reg)
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]string{}
	mu.Unlock()
}
