package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// Filter holds the user-chosen search parameters for one collection.
type Filter struct {
	Text     string
	Category string
}

// AllowsAny reports whether the category dimension is unfiltered.
func (f Filter) AllowsAny() bool {
	return f.Category == "" || f.Category == AllCategories
}

// Matcher decides membership of a record in the matching set.
// Each collection keeps its own category rule.
type Matcher[T any] interface {
	MatchText(item T, needle string) bool
	MatchCategory(item T, category string) bool
}

// Query returns the records passing both the text and the category
// condition, in their original order. records is never modified.
func Query[T any](records []T, f Filter, m Matcher[T]) []T {
	needle := fold(f.Text)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !m.MatchText(r, needle) {
			continue
		}
		if !f.AllowsAny() && !m.MatchCategory(r, f.Category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// fold lower-cases s for case-insensitive comparison.
// A Caser is stateful, so one is built per call.
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// containsFold reports whether haystack contains an already folded needle.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold(haystack), needle)
}
