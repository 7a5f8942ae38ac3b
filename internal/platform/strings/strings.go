// Package strings provides string and slice helpers
package strings

import (
	"slices"
	std "strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// NilIfEmpty collapses an empty slice to nil so it is stored as NULL
func NilIfEmpty[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	return in
}

// MustPrefix normalizes and asserts a root path like /checkin or /meta
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Fold trims s and applies unicode case folding
func Fold(s string) string {
	return folder.String(std.TrimSpace(s))
}

// SortedSet drops blanks and duplicates and returns the values sorted
func SortedSet(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if std.TrimSpace(s) == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
