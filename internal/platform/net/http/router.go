package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against
// the API only reads (meta, docs, pprof) and posts check-ins, so only GET and POST exist
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the handler to serve, the root mux even from a sub router
	Mux() http.Handler
}
