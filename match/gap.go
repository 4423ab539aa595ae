// match/gap.go

package match

import (
	"math"
	"sort"
	"strings"
)

////////////////////////////////////////////////////////////////////////
// Gap Analysis Types
////////////////////////////////////////////////////////////////////////

// UserSkill is a skill name with the user's current proficiency level. The
// data-access layer derives it from the most recent proficiency entry in the
// skill's history; a skill with no history has level 0, never a null.
type UserSkill struct {
	Skill string `json:"skill"`
	Level int    `json:"level"` // 0..5
}

// RoleRequirement is one entry of a role's required-skill list.
type RoleRequirement struct {
	Skill    string `json:"skill"`
	Required int    `json:"required"` // 1..5
}

// SkillGap is the per-requirement comparison result.
type SkillGap struct {
	Skill        string `json:"skill"`
	Current      int    `json:"current"`
	Required     int    `json:"required"`
	Gap          int    `json:"gap"`          // max(0, required-current)
	MatchPercent int    `json:"matchPercent"` // 100 when current >= required
}

// GapReport holds the full comparison of a user's skills against one role.
type GapReport struct {
	Gaps         []SkillGap `json:"gaps"`         // one entry per requirement, requirement order
	OverallMatch int        `json:"overallMatch"` // rounded mean of per-requirement match percentages
}

////////////////////////////////////////////////////////////////////////
// Gap Analysis
////////////////////////////////////////////////////////////////////////

// AnalyzeGaps compares the user's skills against a role's requirement list.
//
// Requirements are a controlled vocabulary, so the lookup is a
// case-insensitive EXACT name match — intentionally stricter than the
// substring containment the job scorer uses for free-text postings. A
// requirement the user has no skill for reads as current level 0.
//
// The returned report carries every requirement, including ones the user
// fully meets; callers interested only in deficits use Deficits.
func AnalyzeGaps(userSkills []UserSkill, requirements []RoleRequirement) GapReport {
	// Index the user's levels by lower-cased name once.
	levels := make(map[string]int, len(userSkills))
	for _, us := range userSkills {
		levels[strings.ToLower(us.Skill)] = us.Level
	}

	gaps := make([]SkillGap, 0, len(requirements))
	percentSum := 0

	for _, req := range requirements {
		current := levels[strings.ToLower(req.Skill)]

		gap := req.Required - current
		if gap < 0 {
			gap = 0
		}

		// Clamp the divisor so a malformed required=0 can never divide by
		// zero; catalog validation rejects such requirements at the boundary.
		divisor := req.Required
		if divisor < 1 {
			divisor = 1
		}

		percent := 100
		if current < req.Required {
			percent = int(math.Round(float64(current) / float64(divisor) * 100))
		}
		percentSum += percent

		gaps = append(gaps, SkillGap{
			Skill:        req.Skill,
			Current:      current,
			Required:     req.Required,
			Gap:          gap,
			MatchPercent: percent,
		})
	}

	overall := 0
	if len(requirements) > 0 {
		overall = int(math.Round(float64(percentSum) / float64(len(requirements))))
	}

	return GapReport{Gaps: gaps, OverallMatch: overall}
}

// Deficits returns only the entries with gap > 0, sorted by descending gap.
// The sort is stable: requirements with equal gaps keep their catalog order.
func (r GapReport) Deficits() []SkillGap {
	deficits := make([]SkillGap, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		if g.Gap > 0 {
			deficits = append(deficits, g)
		}
	}

	sort.SliceStable(deficits, func(i, j int) bool {
		return deficits[i].Gap > deficits[j].Gap
	})

	return deficits
}
