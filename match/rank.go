// match/rank.go

package match

import "sort"

////////////////////////////////////////////////////////////////////////
// Match Categories
////////////////////////////////////////////////////////////////////////

// Category is a pure classification of a match score; it is never stored.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryHigh   Category = "high-match"   // score >= 80
	CategoryMedium Category = "medium-match" // 60 <= score < 80
	CategoryLow    Category = "low-match"    // score < 60
)

// CategoryOf classifies a match score into its band.
func CategoryOf(score int) Category {
	switch {
	case score >= 80:
		return CategoryHigh
	case score >= 60:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// ParseCategory maps a request string to a Category. Unknown or empty values
// fall back to CategoryAll, mirroring the UI's default filter.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryHigh, CategoryMedium, CategoryLow:
		return Category(s)
	default:
		return CategoryAll
	}
}

////////////////////////////////////////////////////////////////////////
// Filtering and Sorting
////////////////////////////////////////////////////////////////////////

// FilterByCategory keeps the matches whose score falls into the category,
// preserving input order. CategoryAll returns everything.
func FilterByCategory(matches []JobMatch, cat Category) []JobMatch {
	if cat == CategoryAll {
		return matches
	}

	filtered := make([]JobMatch, 0, len(matches))
	for _, m := range matches {
		if CategoryOf(m.MatchScore) == cat {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SortByScore orders matches by descending score, stable on ties, in place.
func SortByScore(matches []JobMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}
