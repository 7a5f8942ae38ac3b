// Package middleware holds the request pipeline in front of the check-in routes.
// chi and go-chi/cors do the work underneath, none of their types leak out
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the shape every entry of a stack has
type Middleware = func(http.Handler) http.Handler

// the API only reads and posts check-ins, browsers send a bearer token with them
var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}
	corsExposed = []string{"X-Request-ID"}
)

// Correlation tags each request with an X-Request-ID and resolves the client
// address from X-Forwarded-For, in that order
func Correlation() []Middleware {
	return []Middleware{chimw.RequestID, chimw.RealIP}
}

// CORSOptions narrows go-chi/cors to what a check-in client needs
type CORSOptions struct {
	AllowedOrigins []string
	// MaxAge caches preflight answers, in seconds
	MaxAge int
}

// CORS lets the listed origins call the API. No origins means no CORS headers at all
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: corsMethods,
		AllowedHeaders: corsHeaders,
		ExposedHeaders: corsExposed,
		MaxAge:         o.MaxAge,
	})
}

// EdgeOptions tunes Edge
type EdgeOptions struct {
	// Heartbeat answers GET on this path with 200 before routing, empty disables it
	Heartbeat string
	// Timeout cancels the request context, zero disables it
	Timeout time.Duration
}

// Edge is the transport half of a stack: responses are never cached and are
// compressed, a trailing slash is ignored, and slow requests are cancelled
func Edge(o EdgeOptions) []Middleware {
	c := chimw.NewCompressor(flate.BestSpeed)
	out := []Middleware{chimw.NoCache, c.Handler}
	if o.Heartbeat != "" {
		out = append(out, chimw.Heartbeat(o.Heartbeat))
	}
	out = append(out, chimw.StripSlashes)
	if o.Timeout > 0 {
		out = append(out, chimw.Timeout(o.Timeout))
	}
	return out
}
