package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "healthdash/internal/platform/errors"
	pnet "healthdash/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures the keyed token bucket limiter
type RateLimitOptions struct {
	// Every is the refill interval for one token
	Every time.Duration
	// Burst is the bucket size
	Burst int
	// Key picks the bucket, defaults to user id then client ip
	Key func(r *http.Request) string
	// IdleTTL drops buckets not touched for this long, defaults to 10m
	IdleTTL time.Duration
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiter struct {
	mu      sync.Mutex
	opt     RateLimitOptions
	buckets map[string]*bucket
	lastGC  time.Time
	now     func() time.Time
}

func newLimiter(opt RateLimitOptions) *limiter {
	if opt.Burst <= 0 {
		opt.Burst = 1
	}
	if opt.IdleTTL <= 0 {
		opt.IdleTTL = 10 * time.Minute
	}
	if opt.Key == nil {
		opt.Key = userOrIP
	}
	return &limiter{opt: opt, buckets: map[string]*bucket{}, now: time.Now}
}

func (l *limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastGC) > l.opt.IdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.opt.IdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastGC = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Every(l.opt.Every), l.opt.Burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// RateLimit rejects requests over budget with 429. Every <= 0 disables it
func RateLimit(opt RateLimitOptions, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	if opt.Every <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	l := newLimiter(opt)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(l.opt.Key(r)) {
				w.Header().Set("Retry-After", retryAfter(l.opt.Every))
				status, body := pnet.Error(perr.TooManyRequestsf("Too many requests"), pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userOrIP(r *http.Request) string {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return "u:" + uid
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func retryAfter(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
