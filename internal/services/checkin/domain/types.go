// Package domain holds the check-in value types shared by repo, service and transport
package domain

import (
	"healthdash/internal/core/checkin"
	ptime "healthdash/internal/platform/time"
)

// Submission is the loosely typed request body
type Submission = checkin.Submission

// Scale is the numeric range a set of scores was persisted on
type Scale int

// persisted scales
const (
	Scale10 Scale = 10
	Scale5  Scale = 5
)

// Scores are the numeric fields of a check-in on a known scale
// Sleep and Mood are nil when the submission left them unset
type Scores struct {
	Scale  Scale
	Energy int
	Focus  int
	Sleep  *int
	Mood   *int
}

// ScoresFrom lifts normalized input onto the 10 point scale
func ScoresFrom(n checkin.Normalized) Scores {
	return Scores{
		Scale:  Scale10,
		Energy: n.Energy,
		Focus:  n.Focus,
		Sleep:  n.Sleep,
		Mood:   n.Mood,
	}
}

// Rescaled halves every present score into [1,5]
// scores already on the 5 point scale are returned unchanged
func (s Scores) Rescaled() Scores {
	if s.Scale == Scale5 {
		return s
	}
	return Scores{
		Scale:  Scale5,
		Energy: half(s.Energy),
		Focus:  half(s.Focus),
		Sleep:  halfPtr(s.Sleep),
		Mood:   halfPtr(s.Mood),
	}
}

// half is round(v/2) with halves rounded up, clamped into [1,5]
func half(v int) int {
	return max(1, min(5, (v+1)/2))
}

func halfPtr(v *int) *int {
	if v == nil {
		return nil
	}
	h := half(*v)
	return &h
}

// DailyEntry is one row of the calendar mirror keyed by user and local date
type DailyEntry struct {
	UserID      string
	LocalDate   ptime.Day
	Scores      Scores
	Tags        []string
	Supplements map[string]bool
}

// CheckIn is one row of the canonical per day record keyed by user and day
type CheckIn struct {
	UserID          string
	Day             ptime.Day
	Scores          Scores
	Stress          *checkin.StressLevel
	Tags            []string
	IntenseExercise bool
	NewSupplement   bool
}

// Event is the analytics copy of a stored check-in
type Event struct {
	ID              string
	UserID          string
	Day             ptime.Day
	Scores          Scores
	Clean           bool
	IntenseExercise bool
	NewSupplement   bool
	Streak          int
}
