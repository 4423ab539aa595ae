// match/score.go

package match

import (
	"math"
	"strings"
)

////////////////////////////////////////////////////////////////////////
// Canonical Posting Shape
////////////////////////////////////////////////////////////////////////

// JobPosting is the canonical shape every posting is adapted into before it
// reaches the scorer. Provider-specific field fallbacks (snippet vs
// description, city vs location, ...) are resolved by the connector's
// adapter; this package only ever sees this struct.
type JobPosting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Link        string   `json:"link,omitempty"`
	Profession  string   `json:"profession,omitempty"`
	Tags        []string `json:"tags"`
}

// JobMatch is a posting annotated with how well it fits a user's skill set.
type JobMatch struct {
	JobPosting
	MatchScore  int      `json:"matchScore"`  // integer percentage in [0,100]
	MatchedTags []string `json:"matchedTags"` // user's skills found in the posting, caller's casing and order
}

////////////////////////////////////////////////////////////////////////
// Scoring
////////////////////////////////////////////////////////////////////////

// Score computes a JobMatch for one posting against the user's skill names.
//
// The posting's title, description, and derived tags are flattened into one
// normalized word set; a skill counts as matched when any word in that set
// contains the normalized skill as a substring. The containment test is
// deliberately permissive so compound words still match ("fullstack"
// contains "full", "javascript-based" contains "javascript"). The flip side
// is the occasional false positive ("go" inside "good"); that trade-off is
// kept as documented behavior.
//
// The score is round(matched/total*100), or 0 when the user has no skills.
// A skill matching many words still counts once.
func Score(userSkills []string, job JobPosting) JobMatch {
	tags := ExtractTags(job)

	corpus := Normalize(job.Title + " " + job.Description + " " + strings.Join(tags, " "))
	jobWords := words(corpus)

	matched := make([]string, 0, len(userSkills))
	for _, skill := range userSkills {
		if containsNormalized(jobWords, skill) {
			matched = append(matched, skill)
		}
	}

	score := 0
	if len(userSkills) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(userSkills)) * 100))
	}

	out := job
	out.Tags = tags

	return JobMatch{
		JobPosting:  out,
		MatchScore:  score,
		MatchedTags: matched,
	}
}

// ScoreAll scores every posting in the slice, preserving input order.
func ScoreAll(userSkills []string, jobs []JobPosting) []JobMatch {
	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, Score(userSkills, job))
	}
	return matches
}
