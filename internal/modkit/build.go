package modkit

import str "healthdash/internal/platform/strings"

// Built is what a module constructor reads back from its options
type Built struct {
	Name   string
	Prefix string
	Ports  any
}

// Build applies opts in order, later options win
// the prefix always comes back with a leading slash
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	b := Built{Name: c.name, Ports: c.ports}
	if c.prefix != "" {
		b.Prefix = str.MustPrefix(c.prefix)
	}
	return b
}
