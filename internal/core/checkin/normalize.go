// Package checkin turns a loosely typed daily submission into validated scores,
// a canonical tag set, and supplement intake flags
// Normalize is pure and safe for concurrent use
package checkin

import (
	"math"

	perr "healthdash/internal/platform/errors"
	pstrings "healthdash/internal/platform/strings"
	"healthdash/internal/platform/validate"
)

// Submission is the request body as decoded from JSON, before any typing
type Submission struct {
	Mood             any `json:"mood"`
	Energy           any `json:"energy"`
	Focus            any `json:"focus"`
	Sleep            any `json:"sleep"`
	Stress           any `json:"stress"`
	Tags             any `json:"tags"`
	SupplementIntake any `json:"supplement_intake"`
}

// StressLevel is the optional self reported stress bucket
type StressLevel string

// stress levels accepted on input
const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Normalized is a submission after typing, clamping, and tag classification
type Normalized struct {
	Energy int
	Focus  int
	Sleep  *int
	Mood   *int
	Stress *StressLevel

	Classified
}

// ErrMissingRequired is returned when energy or focus is absent or not a number
var ErrMissingRequired = perr.New(perr.ErrorCodeValidation, "Missing required fields")

// Normalize validates required scores and coerces the rest of the submission
func Normalize(s Submission) (Normalized, error) {
	energy, okE := finite(s.Energy)
	focus, okF := finite(s.Focus)
	if !okE || !okF {
		return Normalized{}, ErrMissingRequired
	}

	return Normalized{
		Energy:     Clamp10(energy),
		Focus:      Clamp10(focus),
		Sleep:      optional(s.Sleep),
		Mood:       optional(s.Mood),
		Stress:     stress(s.Stress),
		Classified: Classify(s.Tags, s.SupplementIntake),
	}, nil
}

// Clamp10 rounds v half away from zero and clamps it into [1,10]
// non finite input yields 0, which callers must treat as "no value"
func Clamp10(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	// clamp before converting, out of range float to int is undefined
	return int(max(1, min(10, math.Round(v))))
}

// numeric reports v as a float when it decoded from a JSON number
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func finite(v any) (float64, bool) {
	f, ok := numeric(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func optional(v any) *int {
	f, ok := finite(v)
	if !ok {
		return nil
	}
	n := Clamp10(f)
	return &n
}

func stress(v any) *StressLevel {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = pstrings.Fold(s)
	if err := validate.Var(s, "oneof=low medium high"); err != nil {
		return nil
	}
	lvl := StressLevel(s)
	return &lvl
}
