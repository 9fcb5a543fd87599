// Package filter implements client-side filtering of the movie
// catalog. Filtering is pure computation over an already-fetched
// slice; it never triggers a network call.
//
// Two mechanisms are provided: Match, the simple search-text and
// category filter used by the catalog screen, and an expr-based
// Compiler for free-form boolean expressions on the command line.
package filter

import (
	"sort"
	"strings"

	"github.com/moviatask/moviactl/movia"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Match returns the movies whose title case-insensitively contains
// search and whose category equals category. An empty search matches
// every title; CategoryAll (or an empty string) matches every
// category. The input slice is never modified.
func Match(movies []movia.Movie, search, category string) []movia.Movie {
	search = strings.ToLower(search)
	matched := make([]movia.Movie, 0, len(movies))

	for _, m := range movies {
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		if category != "" && category != CategoryAll && m.Category != category {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

// Categories returns the distinct categories present in movies, sorted,
// with CategoryAll first.
func Categories(movies []movia.Movie) []string {
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if m.Category != "" {
			seen[m.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen)+1)
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return append([]string{CategoryAll}, categories...)
}
