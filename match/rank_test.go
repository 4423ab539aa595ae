package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	require.Equal(t, CategoryHigh, CategoryOf(100))
	require.Equal(t, CategoryHigh, CategoryOf(80))
	require.Equal(t, CategoryMedium, CategoryOf(79))
	require.Equal(t, CategoryMedium, CategoryOf(60))
	require.Equal(t, CategoryLow, CategoryOf(59))
	require.Equal(t, CategoryLow, CategoryOf(0))
}

func TestParseCategory(t *testing.T) {
	require.Equal(t, CategoryHigh, ParseCategory("high-match"))
	require.Equal(t, CategoryMedium, ParseCategory("medium-match"))
	require.Equal(t, CategoryLow, ParseCategory("low-match"))
	require.Equal(t, CategoryAll, ParseCategory("all"))
	require.Equal(t, CategoryAll, ParseCategory(""))
	require.Equal(t, CategoryAll, ParseCategory("garbage"))
}

func TestFilterByCategory(t *testing.T) {
	matches := []JobMatch{
		{JobPosting: JobPosting{ID: "a"}, MatchScore: 90},
		{JobPosting: JobPosting{ID: "b"}, MatchScore: 70},
		{JobPosting: JobPosting{ID: "c"}, MatchScore: 50},
	}

	medium := FilterByCategory(matches, CategoryMedium)
	require.Len(t, medium, 1)
	require.Equal(t, "b", medium[0].ID)

	high := FilterByCategory(matches, CategoryHigh)
	require.Len(t, high, 1)
	require.Equal(t, "a", high[0].ID)

	all := FilterByCategory(matches, CategoryAll)
	require.Len(t, all, 3)
	// No re-sort is imposed by filtering.
	require.Equal(t, "a", all[0].ID)
	require.Equal(t, "b", all[1].ID)
	require.Equal(t, "c", all[2].ID)
}

func TestSortByScoreStable(t *testing.T) {
	matches := []JobMatch{
		{JobPosting: JobPosting{ID: "low"}, MatchScore: 10},
		{JobPosting: JobPosting{ID: "tie-1"}, MatchScore: 80},
		{JobPosting: JobPosting{ID: "tie-2"}, MatchScore: 80},
		{JobPosting: JobPosting{ID: "top"}, MatchScore: 95},
	}

	SortByScore(matches)

	require.Equal(t, "top", matches[0].ID)
	require.Equal(t, "tie-1", matches[1].ID) // stable: tie keeps input order
	require.Equal(t, "tie-2", matches[2].ID)
	require.Equal(t, "low", matches[3].ID)
}
