package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Lowercases and strips punctuation",
			input: "Full-Stack Developer (Remote)!",
			want:  "full stack developer  remote  ",
		},
		{
			name:  "Keeps plus sign",
			input: "C++",
			want:  "c++",
		},
		{
			name:  "Digits survive",
			input: "Web3 / HTML5",
			want:  "web3   html5",
		},
		{
			name:  "Empty input normalizes to empty",
			input: "",
			want:  "",
		},
		{
			name:  "Unicode runes become spaces",
			input: "café – naïve",
			want:  "caf    na ve",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestContainsNormalized(t *testing.T) {
	jobWords := words(Normalize("Looking for a JavaScript-based fullstack role"))

	// "javascript-based" was split on the hyphen, so the word set carries
	// "javascript" and "based"; the skill matches by plain containment.
	require.True(t, containsNormalized(jobWords, "JavaScript"))

	// "full" is a substring of "fullstack" — the permissive containment
	// behavior the scorer relies on.
	require.True(t, containsNormalized(jobWords, "full"))

	require.False(t, containsNormalized(jobWords, "python"))

	// A skill that normalizes to nothing can never match.
	require.False(t, containsNormalized(jobWords, "  --  "))
}
