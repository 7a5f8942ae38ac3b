package strings

import (
	"slices"
	"testing"
)

func TestNilIfEmpty(t *testing.T) {
	t.Parallel()

	if NilIfEmpty([]string{}) != nil {
		t.Fatal("empty slice should collapse to nil")
	}
	if got := NilIfEmpty([]string{"a"}); len(got) != 1 {
		t.Fatalf("got %#v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"/checkin/":   "/checkin",
		" checkin  ":  "/checkin",
		"//checkin//": "/checkin",
		"/":           "",
		"":            "",
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q want %q", in, got, want)
		}
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  LOW ":    "low",
		"Medium":    "medium",
		"Straße":    "strasse",
		"":          "",
		"clean_day": "clean_day",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q want %q", in, got, want)
		}
	}
}

func TestSortedSet(t *testing.T) {
	t.Parallel()

	got := SortedSet([]string{"travel", "alcohol", "travel", "", "   ", "caffeine"})
	want := []string{"alcohol", "caffeine", "travel"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortedSet = %v want %v", got, want)
	}
	if got := SortedSet(nil); len(got) != 0 {
		t.Fatalf("nil input = %v", got)
	}
}
