// Package httpkit is what service modules route with. It re-exports the platform
// router and response types so modules never import internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "healthdash/internal/platform/net/http"
)

type (
	// Response is what a handler hands back to be written
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is the platform router
	Router = phttp.Router
)

// Raw writes body as is, outside the envelope. The check-in routes answer this way
func Raw(status int, body any) Response { return phttp.Raw(status, body) }

// JSON writes v with status, for rejections written before a handler runs
func JSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }

// Handle adapts a Response returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Get registers a read only route answered in the envelope.
// A returned Response is written untouched, an error is mapped by its code
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, phttp.Handle(func(req *http.Request) phttp.Response {
		out, err := fn(req)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	}))
}
