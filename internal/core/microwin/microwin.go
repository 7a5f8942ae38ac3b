// Package microwin builds the short encouragement lines returned after a check-in
package microwin

import (
	"fmt"

	"healthdash/internal/core/streak"
)

// messages shown to the user, keep wording stable for clients that match on them
const (
	CleanDay    = "Clean day logged. Nothing to flag today, nice work!"
	FirstStreak = "First check-in of this streak. Every streak starts with day one!"
)

// Extended is the consecutive streak line for n days
func Extended(n int) string {
	unit := "days"
	if n == 1 {
		unit = "day"
	}
	return fmt.Sprintf("Streak extended: %d %s in a row!", n, unit)
}

// Generate returns the micro wins in display order, clean day first.
// The result is never nil so it encodes as []
func Generate(clean bool, kind streak.Kind, current int) []string {
	out := make([]string, 0, 2)
	if clean {
		out = append(out, CleanDay)
	}
	switch kind {
	case streak.Consecutive:
		out = append(out, Extended(current))
	case streak.Reset:
		out = append(out, FirstStreak)
	}
	return out
}
