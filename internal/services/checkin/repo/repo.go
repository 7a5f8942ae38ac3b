// Package repo provides the check-in persistence adapters
package repo

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"healthdash/internal/core/checkin"
	"healthdash/internal/core/streak"
	"healthdash/internal/modkit/repokit"
	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/store"
	pstrings "healthdash/internal/platform/strings"
	ptime "healthdash/internal/platform/time"
	"healthdash/internal/services/checkin/domain"
)

// Schema creates every table the pipeline writes
//
//go:embed schema.sql
var Schema string

// Repo is the check-in persistence surface used by the service layer
// daily entries and the dashboard marker are written through the admin runner,
// check-ins and profile streaks through the user scoped runner
type Repo interface {
	DailyEntryExists(ctx context.Context, userID string, day ptime.Day) (bool, error)
	UpsertDailyEntry(ctx context.Context, e domain.DailyEntry) error

	UpsertCheckIn(ctx context.Context, c domain.CheckIn) (string, error)

	LoadStreak(ctx context.Context, userID string) (streak.State, error)
	SaveStreak(ctx context.Context, userID string, s streak.State) error

	TouchDashboardCache(ctx context.Context, userID string, at time.Time) error
}

type (
	// PG is a Postgres implementation of the check-in repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// DailyEntryExists reports whether the user already has a row for day
func (r *queries) DailyEntryExists(ctx context.Context, userID string, day ptime.Day) (bool, error) {
	const sql = `
		SELECT EXISTS (
			SELECT 1 FROM daily_entries WHERE user_id = $1 AND local_date = $2::date
		)
	`
	ok, err := store.Scalar[bool](ctx, r.q, sql, userID, dayArg(day))
	return ok, perr.FromPostgres(err, "daily_entries.exists")
}

// UpsertDailyEntry writes the calendar mirror row for (user, local date)
// range check violations come back as ErrorCodeRangeConstraint
func (r *queries) UpsertDailyEntry(ctx context.Context, e domain.DailyEntry) error {
	const sql = `
		INSERT INTO daily_entries (
			user_id, local_date, mood, energy, focus, sleep_quality, tags, supplement_intake, updated_at
		) VALUES (
			$1, $2::date, $3, $4, $5, $6, $7, $8::jsonb, now()
		)
		ON CONFLICT (user_id, local_date) DO UPDATE
		SET mood              = EXCLUDED.mood,
		    energy            = EXCLUDED.energy,
		    focus             = EXCLUDED.focus,
		    sleep_quality     = EXCLUDED.sleep_quality,
		    tags              = EXCLUDED.tags,
		    supplement_intake = EXCLUDED.supplement_intake,
		    updated_at        = EXCLUDED.updated_at
	`
	err := store.ExecOne(ctx, r.q, sql,
		e.UserID, dayArg(e.LocalDate),
		e.Scores.Mood, e.Scores.Energy, e.Scores.Focus, e.Scores.Sleep,
		pstrings.NilIfEmpty(e.Tags), intakeArg(e.Supplements),
	)
	return perr.FromPostgres(err, "daily_entries.upsert")
}

// UpsertCheckIn writes the canonical row for (user, day) and returns its id
func (r *queries) UpsertCheckIn(ctx context.Context, c domain.CheckIn) (string, error) {
	const sql = `
		INSERT INTO checkin (
			user_id, day, mood, energy, focus, sleep, stress, tags,
			intense_exercise, new_supplement, scale, updated_at
		) VALUES (
			$1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, now()
		)
		ON CONFLICT (user_id, day) DO UPDATE
		SET mood             = EXCLUDED.mood,
		    energy           = EXCLUDED.energy,
		    focus            = EXCLUDED.focus,
		    sleep            = EXCLUDED.sleep,
		    stress           = EXCLUDED.stress,
		    tags             = EXCLUDED.tags,
		    intense_exercise = EXCLUDED.intense_exercise,
		    new_supplement   = EXCLUDED.new_supplement,
		    scale            = EXCLUDED.scale,
		    updated_at       = EXCLUDED.updated_at
		RETURNING id::text
	`
	id, err := store.Scalar[string](ctx, r.q, sql,
		c.UserID, dayArg(c.Day),
		c.Scores.Mood, c.Scores.Energy, c.Scores.Focus, c.Scores.Sleep,
		stressArg(c.Stress), pstrings.NilIfEmpty(c.Tags),
		c.IntenseExercise, c.NewSupplement, int(c.Scores.Scale),
	)
	if err != nil {
		return "", perr.FromPostgres(err, "checkin.upsert")
	}
	return id, nil
}

// LoadStreak reads the streak subset of the profile
// a missing profile is a zero state, not an error
func (r *queries) LoadStreak(ctx context.Context, userID string) (streak.State, error) {
	const sql = `
		SELECT current_streak, last_checkin_date, first_activity_date
		FROM profiles
		WHERE id = $1
	`
	s, err := store.One(ctx, r.q, scanStreak, sql, userID)
	if errors.Is(err, perr.ErrNotFound) {
		return streak.State{}, nil
	}
	if err != nil {
		return streak.State{}, perr.FromPostgres(err, "profiles.load_streak")
	}
	return s, nil
}

// SaveStreak overwrites current and last, first activity is only ever filled once
func (r *queries) SaveStreak(ctx context.Context, userID string, s streak.State) error {
	const sql = `
		INSERT INTO profiles (id, current_streak, last_checkin_date, first_activity_date)
		VALUES ($1, $2, $3::date, $4::date)
		ON CONFLICT (id) DO UPDATE
		SET current_streak      = EXCLUDED.current_streak,
		    last_checkin_date   = EXCLUDED.last_checkin_date,
		    first_activity_date = COALESCE(profiles.first_activity_date, EXCLUDED.first_activity_date)
	`
	err := store.ExecOne(ctx, r.q, sql, userID, s.Current, dayArg(s.Last), dayArg(s.FirstActivity))
	return perr.FromPostgres(err, "profiles.save_streak")
}

// TouchDashboardCache marks the user's aggregate dashboard data stale
func (r *queries) TouchDashboardCache(ctx context.Context, userID string, at time.Time) error {
	const sql = `
		INSERT INTO dashboard_cache (user_id, invalidated_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET invalidated_at = EXCLUDED.invalidated_at
	`
	err := store.ExecOne(ctx, r.q, sql, userID, at.UTC())
	return perr.FromPostgres(err, "dashboard_cache.touch")
}

func scanStreak(row store.Row) (streak.State, error) {
	var (
		cur         int
		last, first *time.Time
	)
	if err := row.Scan(&cur, &last, &first); err != nil {
		return streak.State{}, err
	}
	s := streak.State{Current: cur}
	if last != nil {
		s.Last = ptime.FromDate(*last)
	}
	if first != nil {
		s.FirstActivity = ptime.FromDate(*first)
	}
	return s, nil
}

func dayArg(d ptime.Day) any {
	if d.IsZero() {
		return nil
	}
	return d.Time()
}

func stressArg(s *checkin.StressLevel) any {
	if s == nil {
		return nil
	}
	return string(*s)
}

// intakeArg lets pgx encode the map as json, an empty map is stored as NULL
func intakeArg(m map[string]bool) any {
	if len(m) == 0 {
		return nil
	}
	return m
}
