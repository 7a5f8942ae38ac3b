// Package testkit holds helpers shared by the check-in tests
package testkit

import (
	"strings"
	"sync"
	"testing"
	"time"

	ptime "healthdash/internal/platform/time"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails t unless haystack contains needle
// the whole haystack is printed, log lines and bodies are short enough to read
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

var seamMu sync.Mutex

// Swap replaces a package level seam for the duration of the test
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock for the rest of the test
// tests that Swap the same seam must call it first
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// CheckInHour is the wall clock hour Clock.On lands on, well clear of any day boundary
const CheckInHour = 15

// Clock is a hand driven clock for code that takes a now func
// the zero Clock reads as the zero time
type Clock struct{ T time.Time }

// Now returns the current reading
func (c *Clock) Now() time.Time { return c.T }

// On moves the clock to CheckInHour UTC on day, given as YYYY-MM-DD
func (c *Clock) On(day string) {
	c.T = ptime.MustDay(day).Time().Add(CheckInHour * time.Hour)
}

// Day is the UTC calendar day of the current reading
func (c *Clock) Day() ptime.Day { return ptime.DayOf(c.T, time.UTC) }
