package pg

import (
	"context"
	"strings"

	"healthdash/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer returns a tracer that always prints SQL, independent of the root level.
// pool tags every line so user and admin traffic can be told apart
func Tracer(root logger.Logger, pool string) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Str("pool", pool).Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow || ev.Err != nil {
		evt = z.log.Warn()
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		evt = evt.Str("request_id", rid)
	}

	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

type requestIDKey struct{}

// WithRequestID tags traced queries issued under ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// compact folds runs of whitespace into single spaces
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
