// Package streak advances a consecutive day check-in counter
package streak

import ptime "healthdash/internal/platform/time"

// Kind classifies how today relates to the previous check-in
type Kind uint8

const (
	// Unknown means prior state could not be read, nothing is claimed
	Unknown Kind = iota
	// SameDay is a resubmission on the day already counted
	SameDay
	// Consecutive extends the streak by one
	Consecutive
	// Reset starts a new streak at one, covers the first ever check-in
	Reset
)

func (k Kind) String() string {
	switch k {
	case SameDay:
		return "same_day"
	case Consecutive:
		return "consecutive"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// State is the streak subset of a profile
type State struct {
	Current       int
	Last          ptime.Day
	FirstActivity ptime.Day
}

// Transition is the outcome of Advance
type Transition struct {
	Kind Kind
	Next State
}

// Changed reports whether Next differs from the state Advance started from
func (t Transition) Changed() bool { return t.Kind == Consecutive || t.Kind == Reset }

// Advance computes the streak after a check-in on today
func Advance(s State, today ptime.Day) Transition {
	next := s
	if next.FirstActivity.IsZero() {
		next.FirstActivity = today
	}

	switch {
	case !s.Last.IsZero() && s.Last.Equal(today):
		return Transition{Kind: SameDay, Next: next}
	case !s.Last.IsZero() && s.Last.AddDays(1).Equal(today):
		next.Current = s.Current + 1
		next.Last = today
		return Transition{Kind: Consecutive, Next: next}
	default:
		next.Current = 1
		next.Last = today
		return Transition{Kind: Reset, Next: next}
	}
}
