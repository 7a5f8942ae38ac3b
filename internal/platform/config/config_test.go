package config

import (
	"testing"
	"time"

	kit "healthdash/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_API_")
	if got := api.key("API_PORT"); got != "CORE_API_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_API_PORT")
	}
	ci := api.Prefix("CHECKIN_")
	if got := ci.key("TIMEZONE"); got != "CORE_API_CHECKIN_TIMEZONE" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_SECRET", "  s3cr3t ")
	if got := c.MustString("SECRET"); got != "s3cr3t" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	t.Setenv("APP_WS", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("WS") })
}

func TestFirstString(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://user")
	if got := c.FirstString("", "ADMIN_DBURL", "DBURL"); got != "postgres://user" {
		t.Fatalf("fallback = %q", got)
	}
	t.Setenv("SERVICE_PGSQL_ADMIN_DBURL", "postgres://admin")
	if got := c.FirstString("", "ADMIN_DBURL", "DBURL"); got != "postgres://admin" {
		t.Fatalf("primary = %q", got)
	}
	if got := c.FirstString("def", "NOPE"); got != "def" {
		t.Fatalf("default = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_INT", " 7 ")
	t.Setenv("M_BADINT", "x")
	t.Setenv("M_B", "true")
	t.Setenv("M_BADB", "nope")
	t.Setenv("M_D", "150ms")
	t.Setenv("M_BADD", "soon")

	if c.MayString("MISSING", "def") != "def" {
		t.Fatal("MayString default")
	}
	if c.MayInt("INT", 0) != 7 || c.MayInt("BADINT", 3) != 3 || c.MayInt("MISSING", 9) != 9 {
		t.Fatal("MayInt")
	}
	if !c.MayBool("B", false) || c.MayBool("BADB", false) || !c.MayBool("MISSING", true) {
		t.Fatal("MayBool")
	}
	if c.MayDuration("D", time.Second) != 150*time.Millisecond || c.MayDuration("BADD", time.Minute) != time.Minute {
		t.Fatal("MayDuration")
	}
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("MISSING", 4000); got != ":4000" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("P_A", "8080")
	t.Setenv("P_B", ":9090")
	if c.MayPort("A", 1) != ":8080" || c.MayPort("B", 1) != ":9090" {
		t.Fatal("MayPort parse")
	}
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("OOB", 1) })
}

func TestMayLocation(t *testing.T) {
	c := New().Prefix("TZ_")
	if got := c.MayLocation("MISSING", time.UTC); got != time.UTC {
		t.Fatalf("default = %v", got)
	}
	t.Setenv("TZ_ZONE", "America/New_York")
	if got := c.MayLocation("ZONE", time.UTC); got.String() != "America/New_York" {
		t.Fatalf("zone = %v", got)
	}
	t.Setenv("TZ_BAD", "Mars/Olympus")
	kit.MustPanic(t, func() { _ = c.MayLocation("BAD", time.UTC) })
}
