package httpkit

import (
	"net/http"

	phttp "healthdash/internal/platform/net/http"
	"healthdash/internal/platform/net/middleware"
)

// Writer renders a middleware rejection (401, 429)
type Writer = func(w http.ResponseWriter, status int, body any)

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// Protected groups routes under bearer auth. write renders rejections,
// nil falls back to the platform JSON writer
func Protected(r Router, p middleware.AuthPort, write Writer, fn func(Router)) {
	if write == nil {
		write = phttp.JSON
	}
	r.Group(func(gr Router) {
		gr.Use(middleware.Auth(p, write))
		fn(gr)
	})
}
