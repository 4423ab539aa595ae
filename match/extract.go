// match/extract.go

package match

import "strings"

////////////////////////////////////////////////////////////////////////
// Tag Extraction
////////////////////////////////////////////////////////////////////////

// stopwords is the fixed set of tokens that carry no skill information when
// they appear in a job title: articles, prepositions, and generic role words.
// Loaded once at process start and never mutated.
var stopwords = func() map[string]struct{} {
	list := []string{
		"the", "and", "for", "with", "a", "an", "of", "to", "in", "on",
		"at", "by", "as", "is", "are", "from", "or", "be", "this", "that",
		"it", "job", "developer", "engineer", "manager", "senior", "junior",
	}
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}()

// ExtractTags derives the "company wants" tag list for a posting.
//
// Precedence:
//  1. an explicit non-empty tag list is returned verbatim;
//  2. else a profession/category field becomes a one-element list;
//  3. else the title is tokenized on runs of non-alphanumeric/non-'+'
//     characters, lower-cased, and filtered to tokens longer than two
//     characters that are not stopwords.
//
// Insertion order is preserved and duplicates are kept. A posting with none
// of the three sources yields an empty list.
func ExtractTags(job JobPosting) []string {
	if len(job.Tags) > 0 {
		return job.Tags
	}

	if job.Profession != "" {
		return []string{job.Profession}
	}

	tokens := strings.FieldsFunc(job.Title, func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		return !isAlnum && r != '+'
	})

	tags := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tags = append(tags, tok)
	}
	return tags
}
