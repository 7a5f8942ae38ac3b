// Package time contains time related helpers
package time

import "time"

// DayLayout is the wire and column format of a calendar day
const DayLayout = "2006-01-02"

// Day is a calendar date with no time of day or zone
// the zero Day is "no date"
type Day struct {
	t time.Time // midnight UTC
}

// DayOf returns the calendar date of t as observed in loc
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return NewDay(y, m, d)
}

// FromDate takes the year, month, and day of t as written, ignoring its zone.
// Use it for values scanned from a SQL date column
func FromDate(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// NewDay builds a Day, normalizing overflow like time.Date does
func NewDay(y int, m time.Month, d int) Day {
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses YYYY-MM-DD
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return Day{t: t}, nil
}

// MustDay is ParseDay for literals
func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero Day
func (d Day) IsZero() bool { return d.t.IsZero() }

// AddDays moves d by n calendar days
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Equal reports whether both are the same date
func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// Time returns midnight UTC of d, suitable as a date query arg
func (d Day) Time() time.Time { return d.t }

// String formats d as YYYY-MM-DD, or "" for the zero Day
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

// Ptr returns a pointer to d or nil if d is zero
func (d Day) Ptr() *Day {
	if d.IsZero() {
		return nil
	}
	return &d
}
