package store

import (
	"healthdash/internal/platform/logger"
)

// Option tunes Open
type Option func(*openOptions)

type openOptions struct {
	log   logger.Logger
	guard bool
}

// WithLogger sets the logger the pg, clickhouse and redis clients log through
func WithLogger(log logger.Logger) Option {
	return func(o *openOptions) { o.log = log }
}

// WithGuard makes Open ping every backend it opened and fail if one does not answer
func WithGuard() Option {
	return func(o *openOptions) { o.guard = true }
}
