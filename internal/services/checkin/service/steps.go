package service

import (
	"context"
	"time"

	"healthdash/internal/core/checkin"
	"healthdash/internal/core/streak"
	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/store"
	ptime "healthdash/internal/platform/time"
	"healthdash/internal/services/checkin/domain"

	"github.com/rs/zerolog"
)

// pipeline step names, used in logs
const (
	stepDailyEntry = "daily_entry"
	stepStreak     = "streak"
	stepCheckIn    = "checkin"
	stepCache      = "cache"
	stepEviction   = "eviction"
	stepAnalytics  = "analytics"
)

// stepOutcome is the result of one pipeline step
// fatal outcomes stop the pipeline and carry a persistence error, the rest are logged at warn
type stepOutcome struct {
	step  string
	fatal bool
	err   error
}

func fatal(step string, err error) stepOutcome {
	return stepOutcome{step: step, fatal: err != nil, err: perr.Persistence(err, step)}
}

func soft(step string, err error) stepOutcome {
	return stepOutcome{step: step, err: err}
}

// failed logs and reports a fatal outcome
func (o stepOutcome) failed(ctx context.Context) bool {
	if !o.fatal {
		return false
	}
	ev := zerolog.Ctx(ctx).Error().Err(o.err).Str("step", o.step)
	if e, ok := perr.As(o.err); ok {
		ev = ev.Str("op", e.Op())
	}
	ev.Msg("check-in aborted")
	return true
}

// report logs a non fatal failure
func (o stepOutcome) report(ctx context.Context) {
	if o.err == nil || o.fatal {
		return
	}
	zerolog.Ctx(ctx).Warn().Err(o.err).Str("step", o.step).Msg("check-in step skipped")
}

// dailyWrite is what the daily entry writer persisted
type dailyWrite struct {
	scores  domain.Scores
	existed bool
}

// writeDailyEntry upserts the calendar mirror on the 10 point scale and,
// when a range constraint rejects it, retries exactly once on the 5 point scale
func (s *Svc) writeDailyEntry(ctx context.Context, userID string, day ptime.Day, n checkin.Normalized) (dailyWrite, stepOutcome) {
	w := dailyWrite{scores: domain.ScoresFrom(n)}

	// racy by nature, the upsert collapses concurrent writers onto one row
	err := store.RunAsAdmin(ctx, s.admin, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		w.existed, err = s.binder.Bind(q).DailyEntryExists(ctx, userID, day)
		return err
	})
	soft(stepDailyEntry, err).report(ctx)

	entry := domain.DailyEntry{
		UserID:      userID,
		LocalDate:   day,
		Scores:      w.scores,
		Tags:        n.Tags,
		Supplements: n.Supplements,
	}
	err = s.upsertDailyEntry(ctx, entry)
	if perr.IsCode(err, perr.ErrorCodeRangeConstraint) {
		zerolog.Ctx(ctx).Warn().
			Str("constraint", perr.ConstraintName(err)).
			Msg("daily entry rejected on 10 point scale, retrying on 5")
		entry.Scores = entry.Scores.Rescaled()
		err = s.upsertDailyEntry(ctx, entry)
	}
	if err != nil {
		return dailyWrite{}, fatal(stepDailyEntry, err)
	}

	w.scores = entry.Scores
	return w, stepOutcome{step: stepDailyEntry}
}

func (s *Svc) upsertDailyEntry(ctx context.Context, e domain.DailyEntry) error {
	return store.RunAsAdmin(ctx, s.admin, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).UpsertDailyEntry(ctx, e)
	})
}

// advanceStreak loads the profile streak, advances it to day and saves it when it moved
// a failed load yields an Unknown transition so no streak message is produced
func (s *Svc) advanceStreak(ctx context.Context, userID string, day ptime.Day) (streak.Transition, stepOutcome) {
	var (
		tr      streak.Transition
		loadErr error
	)
	err := store.RunAsUser(ctx, s.user, userID, func(ctx context.Context, q store.RowQuerier) error {
		r := s.binder.Bind(q)
		prev, err := r.LoadStreak(ctx, userID)
		if err != nil {
			loadErr = err
			return err
		}
		tr = streak.Advance(prev, day)
		if !tr.Changed() && tr.Next.FirstActivity.Equal(prev.FirstActivity) {
			return nil
		}
		return r.SaveStreak(ctx, userID, tr.Next)
	})
	if loadErr != nil {
		return streak.Transition{Kind: streak.Unknown}, soft(stepStreak, loadErr)
	}
	return tr, soft(stepStreak, err)
}

// writeCheckIn upserts the canonical record with the scores the daily entry writer persisted
func (s *Svc) writeCheckIn(ctx context.Context, userID string, day ptime.Day, n checkin.Normalized, scores domain.Scores) (string, stepOutcome) {
	c := domain.CheckIn{
		UserID:          userID,
		Day:             day,
		Scores:          scores,
		Stress:          n.Stress,
		Tags:            n.Tags,
		IntenseExercise: n.IntenseExercise,
		NewSupplement:   n.NewSupplement,
	}

	var id string
	err := store.RunAsUser(ctx, s.user, userID, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		id, err = s.binder.Bind(q).UpsertCheckIn(ctx, c)
		return err
	})
	return id, fatal(stepCheckIn, err)
}

// invalidate marks the dashboard stale, then evicts the cached copy
func (s *Svc) invalidate(ctx context.Context, userID string, at time.Time) {
	err := store.RunAsAdmin(ctx, s.admin, func(ctx context.Context, q store.RowQuerier) error {
		return s.binder.Bind(q).TouchDashboardCache(ctx, userID, at)
	})
	soft(stepCache, err).report(ctx)

	if s.evictor != nil {
		soft(stepEviction, s.evictor.Evict(ctx, userID)).report(ctx)
	}
}

func (s *Svc) mirror(ctx context.Context, ev domain.Event) {
	if s.analytics == nil {
		return
	}
	soft(stepAnalytics, s.analytics.Record(ctx, ev)).report(ctx)
}
