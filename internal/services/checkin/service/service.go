// Package service contains the check-in ingestion pipeline
package service

import (
	"context"
	"time"

	"healthdash/internal/core/checkin"
	"healthdash/internal/core/microwin"
	"healthdash/internal/modkit/repokit"
	"healthdash/internal/platform/logger"
	ptime "healthdash/internal/platform/time"
	"healthdash/internal/services/checkin/domain"
	"healthdash/internal/services/checkin/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	user   repokit.TxRunner
	admin  repokit.TxRunner
	binder repokit.Binder[repo.Repo]

	analytics repo.Analytics
	evictor   repo.Evictor

	loc *time.Location
	now func() time.Time
}

// Options control service behavior
type Options struct {
	// Location defines the calendar day a submission belongs to, UTC when nil
	Location *time.Location

	// Analytics is optional; stored check-ins are mirrored to it best effort
	Analytics repo.Analytics

	// Evictor is optional; it drops cached dashboards after the marker is written
	Evictor repo.Evictor

	// Now overrides the clock, for tests
	Now func() time.Time
}

// New constructs the service
// user runs caller scoped transactions, admin runs elevated ones
func New(user, admin repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if user == nil || admin == nil {
		panic("checkin.Service requires non nil user and admin TxRunners")
	}
	if binder == nil {
		panic("checkin.Service requires a non nil Repo binder")
	}

	s := &Svc{
		user:      user,
		admin:     admin,
		binder:    binder,
		analytics: opt.Analytics,
		evictor:   opt.Evictor,
		loc:       opt.Location,
		now:       opt.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

var _ Service = (*Svc)(nil)

// Submit runs one check-in through the pipeline
// only the two record writes can fail the request, every other step is logged and skipped
func (s *Svc) Submit(ctx context.Context, userID string, sub domain.Submission) (domain.Result, error) {
	n, err := checkin.Normalize(sub)
	if err != nil {
		return domain.Result{}, err
	}

	now := s.now()
	day := ptime.DayOf(now, s.loc)
	log := logger.C(ctx).With().Str("day", day.String()).Logger()
	ctx = log.WithContext(ctx)

	entry, out := s.writeDailyEntry(ctx, userID, day, n)
	if out.failed(ctx) {
		return domain.Result{}, out.err
	}

	tr, out := s.advanceStreak(ctx, userID, day)
	out.report(ctx)

	id, out := s.writeCheckIn(ctx, userID, day, n, entry.scores)
	if out.failed(ctx) {
		return domain.Result{}, out.err
	}

	s.invalidate(ctx, userID, now)
	s.mirror(ctx, domain.Event{
		ID:              id,
		UserID:          userID,
		Day:             day,
		Scores:          entry.scores,
		Clean:           n.Clean(),
		IntenseExercise: n.IntenseExercise,
		NewSupplement:   n.NewSupplement,
		Streak:          tr.Next.Current,
	})

	wins := microwin.Generate(n.Clean(), tr.Kind, tr.Next.Current)

	log.Info().
		Str("checkin_id", id).
		Int("scale", int(entry.scores.Scale)).
		Bool("resubmission", entry.existed).
		Str("streak", tr.Kind.String()).
		Int("micro_wins", len(wins)).
		Msg("check-in stored")

	return domain.Result{
		ID:           id,
		Day:          day.String(),
		Scale:        entry.scores.Scale,
		Resubmission: entry.existed,
		Streak:       tr,
		MicroWins:    wins,
	}, nil
}
