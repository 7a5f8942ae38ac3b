package middleware

import (
	"net/http"

	"healthdash/internal/platform/logger"
	pnet "healthdash/internal/platform/net"
)

// AuthPort resolves the calling user from a request
type AuthPort interface {
	// Parse returns the user id carried by the request or an error
	Parse(r *http.Request) (userID string, err error)
}

// Auth rejects requests the port cannot resolve and puts the user on context.
// A nil port passes everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			reqID := pnet.RequestID(r.Context())
			uid, err := p.Parse(r)
			if err != nil {
				logger.C(r.Context()).Debug().Err(err).Str("path", r.URL.Path).Msg("auth rejected")
				status, body := pnet.Error(err, reqID)
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = logger.WithRequest(ctx, reqID, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
