package repo

import (
	"context"
	"time"

	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/store"
	"healthdash/internal/services/checkin/domain"
)

// EventsTable is the clickhouse table the analytics mirror appends to
//
//	CREATE TABLE checkin_events (
//	    event_id String, user_id String, day Date, scale UInt8,
//	    energy UInt8, focus UInt8, sleep Nullable(UInt8), mood Nullable(UInt8),
//	    clean Bool, intense_exercise Bool, new_supplement Bool,
//	    streak UInt32, recorded_at DateTime64(3)
//	) ENGINE = ReplacingMergeTree(recorded_at) ORDER BY (user_id, day)
const EventsTable = "checkin_events"

// Analytics mirrors stored check-ins into a columnar store
type Analytics interface {
	Record(ctx context.Context, ev domain.Event) error
}

// Evictor drops cached dashboard payloads for a user
type Evictor interface {
	Evict(ctx context.Context, userID string) error
}

// CH appends check-in events to clickhouse
type CH struct {
	c   store.Clickhouse
	now func() time.Time
}

// NewCH returns the clickhouse analytics mirror, nil when c is nil
func NewCH(c store.Clickhouse) *CH {
	if c == nil {
		return nil
	}
	return &CH{c: c, now: time.Now}
}

// Record appends one event row
func (a *CH) Record(ctx context.Context, ev domain.Event) error {
	row := []any{
		ev.ID,
		ev.UserID,
		ev.Day.Time(),
		uint8(ev.Scores.Scale),
		uint8(ev.Scores.Energy),
		uint8(ev.Scores.Focus),
		u8(ev.Scores.Sleep),
		u8(ev.Scores.Mood),
		ev.Clean,
		ev.IntenseExercise,
		ev.NewSupplement,
		uint32(max(ev.Streak, 0)),
		a.now().UTC(),
	}
	if err := a.c.Insert(ctx, EventsTable, row); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "analytics insert failed")
	}
	return nil
}

func u8(v *int) *uint8 {
	if v == nil {
		return nil
	}
	b := uint8(*v)
	return &b
}

// DashboardKey is the redis key holding a user's rendered dashboard
func DashboardKey(userID string) string { return "dashboard:" + userID }

// Redis evicts dashboard keys
type Redis struct{ r store.Redis }

// NewRedis returns the redis evictor, nil when r is nil
func NewRedis(r store.Redis) *Redis {
	if r == nil {
		return nil
	}
	return &Redis{r: r}
}

// Evict deletes the user's dashboard key, a missing key is not an error
func (e *Redis) Evict(ctx context.Context, userID string) error {
	if _, err := e.r.Del(ctx, DashboardKey(userID)); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "dashboard eviction failed")
	}
	return nil
}
