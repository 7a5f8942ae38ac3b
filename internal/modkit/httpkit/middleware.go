package httpkit

import (
	"net/http"
	"time"

	"healthdash/internal/platform/net/middleware"
)

// HealthPath is answered by the heartbeat before any routing and skipped by the access log
const HealthPath = "/health"

// StackOptions tunes CommonStack
type StackOptions struct {
	// AllowedOrigins for CORS, empty allows none
	AllowedOrigins []string
	// Timeout cancels request contexts, defaults to 30s
	Timeout time.Duration
	// Slow marks access log lines as warn, defaults to 500ms
	Slow time.Duration
}

// CommonStack is the middleware every API route sits behind.
// Auth and the submission limiter are added per route group on top of it
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}
	stack := middleware.Correlation()
	stack = append(stack,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Skip: []string{HealthPath}}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins}),
	)
	return append(stack, middleware.Edge(middleware.EdgeOptions{Heartbeat: HealthPath, Timeout: o.Timeout})...)
}
