package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTags(t *testing.T) {
	testCases := []struct {
		name string
		job  JobPosting
		want []string
	}{
		{
			name: "Explicit tags returned verbatim",
			job: JobPosting{
				Title: "Full Stack Developer",
				Tags:  []string{"React", "Node.js", "React"},
			},
			// Order and duplicates are preserved; no lower-casing is applied
			// to explicit tags.
			want: []string{"React", "Node.js", "React"},
		},
		{
			name: "Profession fallback",
			job: JobPosting{
				Title:      "Some Title",
				Profession: "Data Science",
			},
			want: []string{"Data Science"},
		},
		{
			name: "Title tokenization drops stopwords and short tokens",
			job:  JobPosting{Title: "Full Stack Developer"},
			want: []string{"full", "stack"},
		},
		{
			name: "Tokenizer splits on punctuation and keeps plus",
			job:  JobPosting{Title: "Senior C++ Engineer for Embedded/IoT"},
			// "senior", "engineer", "for" are stopwords; "c++" is kept
			// because '+' counts as a token character; "iot" has length 3.
			want: []string{"c++", "embedded", "iot"},
		},
		{
			name: "Short tokens removed",
			job:  JobPosting{Title: "Go QA Lead"},
			// "go" and "qa" are too short; only "lead" survives.
			want: []string{"lead"},
		},
		{
			name: "No sources yields empty list",
			job:  JobPosting{},
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExtractTags(tc.job))
		})
	}
}
