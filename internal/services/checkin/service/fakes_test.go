package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"healthdash/internal/core/streak"
	"healthdash/internal/modkit/repokit"
	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/store"
	ptime "healthdash/internal/platform/time"
	"healthdash/internal/services/checkin/domain"
	"healthdash/internal/services/checkin/repo"

	"github.com/jackc/pgx/v5/pgconn"
)

// runner is a TxRunner that hands itself to fn, so the repo can see which pool it ran on
type runner struct {
	name string
	txs  int
}

func (r *runner) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	panic("runner: Exec not expected")
}

func (r *runner) Query(context.Context, string, ...any) (store.Rows, error) {
	panic("runner: Query not expected")
}

func (r *runner) QueryRow(context.Context, string, ...any) store.Row {
	panic("runner: QueryRow not expected")
}

func (r *runner) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	r.txs++
	return fn(r)
}

type dayKey struct {
	user string
	day  string
}

type storedCheckIn struct {
	id string
	domain.CheckIn
}

// memory is an in process stand in for the four tables
type memory struct {
	mu sync.Mutex

	daily    map[dayKey]domain.DailyEntry
	checkins map[dayKey]storedCheckIn
	profiles map[string]streak.State
	cache    map[string]time.Time

	// maxScore emulates a range check on daily_entries, 0 disables it
	maxScore int

	dailyCalls  int
	dailyErr    error
	checkInErr  error
	loadErr     error
	saveErr     error
	touchErr    error
	seq         int
	pools       map[string][]string
	saveCalls   int
	existsCalls int
}

func newMemory() *memory {
	return &memory{
		daily:    map[dayKey]domain.DailyEntry{},
		checkins: map[dayKey]storedCheckIn{},
		profiles: map[string]streak.State{},
		cache:    map[string]time.Time{},
		pools:    map[string][]string{},
	}
}

func (m *memory) binder() repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(q repokit.Queryer) repo.Repo {
		return &memRepo{m: m, pool: q.(*runner).name}
	})
}

type memRepo struct {
	m    *memory
	pool string
}

var _ repo.Repo = (*memRepo)(nil)

func (r *memRepo) note(op string) {
	r.m.pools[op] = append(r.m.pools[op], r.pool)
}

func (r *memRepo) DailyEntryExists(_ context.Context, userID string, day ptime.Day) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("daily_entries.exists")
	r.m.existsCalls++
	_, ok := r.m.daily[dayKey{userID, day.String()}]
	return ok, nil
}

func (r *memRepo) UpsertDailyEntry(_ context.Context, e domain.DailyEntry) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("daily_entries.upsert")
	r.m.dailyCalls++
	if r.m.dailyErr != nil {
		return r.m.dailyErr
	}
	if r.m.maxScore > 0 && exceeds(e.Scores, r.m.maxScore) {
		return rangeViolation()
	}
	r.m.daily[dayKey{e.UserID, e.LocalDate.String()}] = e
	return nil
}

func (r *memRepo) UpsertCheckIn(_ context.Context, c domain.CheckIn) (string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("checkin.upsert")
	if r.m.checkInErr != nil {
		return "", r.m.checkInErr
	}
	k := dayKey{c.UserID, c.Day.String()}
	cur, ok := r.m.checkins[k]
	if !ok {
		r.m.seq++
		cur.id = "ck-" + strconv.Itoa(r.m.seq)
	}
	cur.CheckIn = c
	r.m.checkins[k] = cur
	return cur.id, nil
}

func (r *memRepo) LoadStreak(_ context.Context, userID string) (streak.State, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("profiles.load")
	if r.m.loadErr != nil {
		return streak.State{}, r.m.loadErr
	}
	return r.m.profiles[userID], nil
}

func (r *memRepo) SaveStreak(_ context.Context, userID string, s streak.State) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("profiles.save")
	r.m.saveCalls++
	if r.m.saveErr != nil {
		return r.m.saveErr
	}
	r.m.profiles[userID] = s
	return nil
}

func (r *memRepo) TouchDashboardCache(_ context.Context, userID string, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.note("dashboard_cache.touch")
	if r.m.touchErr != nil {
		return r.m.touchErr
	}
	r.m.cache[userID] = at
	return nil
}

func exceeds(s domain.Scores, hi int) bool {
	over := func(p *int) bool { return p != nil && *p > hi }
	return s.Energy > hi || s.Focus > hi || over(s.Sleep) || over(s.Mood)
}

// storeErr is a pg failure as the repo surfaces it
func storeErr(code, msg, op string) error {
	return perr.FromPostgres(fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: msg}), op)
}

func rangeViolation() error {
	raw := &pgconn.PgError{
		Code:           "23514",
		Message:        `new row for relation "daily_entries" violates check constraint "daily_entries_energy_check"`,
		ConstraintName: "daily_entries_energy_check",
	}
	return perr.FromPostgres(fmt.Errorf("exec: %w", raw), "daily_entries.upsert")
}

type fakeEvictor struct {
	keys []string
	err  error
}

func (f *fakeEvictor) Evict(_ context.Context, userID string) error {
	f.keys = append(f.keys, repo.DashboardKey(userID))
	return f.err
}

type fakeAnalytics struct {
	events []domain.Event
	err    error
}

func (f *fakeAnalytics) Record(_ context.Context, ev domain.Event) error {
	f.events = append(f.events, ev)
	return f.err
}

// clock is a settable time source
