// match/normalize.go

// Package match implements the skill-gap and job-match scoring logic:
// comparing a user's recorded skills against a role's required proficiency
// levels, and scoring external job postings against the user's skill set.
// Every function here is a pure computation over its inputs; the package
// performs no I/O and holds no state, so it is safe to call from concurrent
// request handlers without coordination.
package match

import "strings"

// Normalize lower-cases s and replaces every character outside [a-z0-9+]
// with a space. Skill names and job text are always compared in this form so
// that punctuation and casing never affect a match. The '+' is kept because
// it is load-bearing in skill names like "C++" and "Notes+".
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	return sb.String()
}

// words splits already-normalized text on whitespace and returns the set of
// non-empty words.
func words(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// containsNormalized reports whether any word in the haystack contains the
// normalized needle as a substring. This is the single containment test used
// by the scorer, so the "javascript" ⊂ "javascript-based" behavior is
// consistent everywhere. Note this is deliberately NOT used by the gap
// analyzer, which requires exact name equality against a controlled
// vocabulary.
func containsNormalized(haystackWords map[string]struct{}, needle string) bool {
	needle = Normalize(needle)
	if strings.TrimSpace(needle) == "" {
		return false
	}
	for word := range haystackWords {
		if strings.Contains(word, needle) {
			return true
		}
	}
	return false
}
