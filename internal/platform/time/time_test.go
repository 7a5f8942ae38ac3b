package time

import (
	"testing"
	"time"
)

func TestDayOf_UsesLocation(t *testing.T) {
	t.Parallel()

	// 2024-01-02 03:00 UTC is still 2024-01-01 in New York
	instant := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := DayOf(instant, ny).String(); got != "2024-01-01" {
		t.Fatalf("NY day = %s", got)
	}
	if got := DayOf(instant, nil).String(); got != "2024-01-02" {
		t.Fatalf("UTC day = %s", got)
	}
}

func TestDay_Arithmetic(t *testing.T) {
	t.Parallel()

	d := MustDay("2024-02-28")
	if got := d.AddDays(1).String(); got != "2024-02-29" {
		t.Fatalf("leap day = %s", got)
	}
	if got := d.AddDays(2).String(); got != "2024-03-01" {
		t.Fatalf("month rollover = %s", got)
	}
	if !MustDay("2024-01-01").AddDays(-1).Equal(NewDay(2023, 12, 31)) {
		t.Fatal("year rollback")
	}
}

func TestFromDate_IgnoresZone(t *testing.T) {
	t.Parallel()

	tz := time.FixedZone("x", -10*3600)
	scanned := time.Date(2024, 1, 5, 0, 0, 0, 0, tz)
	if got := FromDate(scanned).String(); got != "2024-01-05" {
		t.Fatalf("got %s", got)
	}
	if !FromDate(time.Time{}).IsZero() {
		t.Fatal("zero time should give zero day")
	}
}

func TestParseAndPtr(t *testing.T) {
	t.Parallel()

	if _, err := ParseDay("2024-13-01"); err == nil {
		t.Fatal("bad month accepted")
	}
	var zero Day
	if zero.Ptr() != nil || zero.String() != "" {
		t.Fatal("zero day should be nil/empty")
	}
	if p := MustDay("2024-01-05").Ptr(); p == nil || p.String() != "2024-01-05" {
		t.Fatalf("ptr = %v", p)
	}
}
