package checkin

import (
	"html"
	"math"
	"strings"
	"sync"
	"unicode"

	pstrings "healthdash/internal/platform/strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// reserved tags with behavior attached
const (
	TagCleanDay        = "clean_day"
	TagIntenseExercise = "intense_exercise"
	TagNewSupplement   = "new_supplement"
)

// Classified is the canonical tag set plus the flags derived from it
type Classified struct {
	// Tags is sorted and unique, empty on a clean day
	Tags            []string
	IntenseExercise bool
	NewSupplement   bool
	// Supplements holds only truthy intake entries, nil when none
	Supplements map[string]bool
}

// Clean reports whether nothing was flagged today
func (c Classified) Clean() bool { return len(c.Tags) == 0 }

var strip = bluemonday.StrictPolicy()

// pool of fresh transformer chains, order matters
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)), // zero widths, BOM
			width.Fold,
		)
	},
}

// Classify canonicalizes tags and intake. rawTags may be []string or []any,
// anything else counts as no tags
func Classify(rawTags any, intake any) Classified {
	set := pstrings.SortedSet(tagStrings(rawTags))

	for _, t := range set {
		if t == TagCleanDay {
			set = set[:0]
			break
		}
	}

	c := Classified{Tags: set, Supplements: supplements(intake)}
	for _, t := range set {
		switch t {
		case TagIntenseExercise:
			c.IntenseExercise = true
		case TagNewSupplement:
			c.NewSupplement = true
		}
	}
	return c
}

func tagStrings(raw any) []string {
	var in []string
	switch v := raw.(type) {
	case []string:
		in = v
	case []any:
		in = make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				in = append(in, s)
			}
		}
	default:
		return nil
	}

	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, canonicalTag(s))
	}
	return out
}

// canonicalTag strips markup, folds case and width, and collapses whitespace
func canonicalTag(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(strip.Sanitize(strings.ToValidUTF8(s, "")))

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return strings.Join(strings.Fields(ns), " ")
}

func supplements(intake any) map[string]bool {
	m, ok := intake.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		if strings.TrimSpace(k) == "" || !truthy(v) {
			continue
		}
		out[k] = true
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// truthy follows JSON intuition: false, 0, "", and null are falsy
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	default:
		if f, ok := numeric(v); ok {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}
