package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeGaps(t *testing.T) {
	requirements := []RoleRequirement{
		{Skill: "React", Required: 4},
		{Skill: "Node.js", Required: 4},
		{Skill: "Git", Required: 4},
	}

	userSkills := []UserSkill{
		{Skill: "react", Level: 3}, // case-insensitive exact match
	}

	report := AnalyzeGaps(userSkills, requirements)

	// One entry per requirement, in requirement order.
	require.Len(t, report.Gaps, 3)
	require.Equal(t, SkillGap{Skill: "React", Current: 3, Required: 4, Gap: 1, MatchPercent: 75}, report.Gaps[0])
	require.Equal(t, SkillGap{Skill: "Node.js", Current: 0, Required: 4, Gap: 4, MatchPercent: 0}, report.Gaps[1])
	require.Equal(t, SkillGap{Skill: "Git", Current: 0, Required: 4, Gap: 4, MatchPercent: 0}, report.Gaps[2])

	// mean(75, 0, 0) = 25.
	require.Equal(t, 25, report.OverallMatch)
}

// The deficit view is sorted by descending gap; equal gaps keep their
// original requirement order.
func TestDeficitsOrdering(t *testing.T) {
	requirements := []RoleRequirement{
		{Skill: "React", Required: 4},
		{Skill: "Node.js", Required: 4},
		{Skill: "Git", Required: 4},
	}
	userSkills := []UserSkill{{Skill: "React", Level: 3}}

	deficits := AnalyzeGaps(userSkills, requirements).Deficits()

	require.Len(t, deficits, 3)
	require.Equal(t, "Node.js", deficits[0].Skill) // gap 4, listed before Git
	require.Equal(t, "Git", deficits[1].Skill)     // gap 4
	require.Equal(t, "React", deficits[2].Skill)   // gap 1

	for _, d := range deficits {
		require.Positive(t, d.Gap)
	}
}

func TestAnalyzeGapsNoMatchIsNotSubstring(t *testing.T) {
	// "Java" must not satisfy a "JavaScript" requirement: the gap analyzer
	// uses exact name equality, unlike the job scorer.
	report := AnalyzeGaps(
		[]UserSkill{{Skill: "Java", Level: 5}},
		[]RoleRequirement{{Skill: "JavaScript", Required: 3}},
	)

	require.Equal(t, 0, report.Gaps[0].Current)
	require.Equal(t, 3, report.Gaps[0].Gap)
}

func TestAnalyzeGapsExceedingRequirement(t *testing.T) {
	report := AnalyzeGaps(
		[]UserSkill{{Skill: "Go", Level: 5}},
		[]RoleRequirement{{Skill: "Go", Required: 2}},
	)

	require.Equal(t, 0, report.Gaps[0].Gap) // never negative
	require.Equal(t, 100, report.Gaps[0].MatchPercent)
	require.Equal(t, 100, report.OverallMatch)
	require.Empty(t, report.Deficits())
}

func TestAnalyzeGapsDegenerate(t *testing.T) {
	// No requirements: empty gaps, zero overall, no division by zero.
	report := AnalyzeGaps([]UserSkill{{Skill: "Go", Level: 3}}, nil)
	require.Empty(t, report.Gaps)
	require.Equal(t, 0, report.OverallMatch)

	// Malformed required=0 is clamped, not a crash; the entry reads as met.
	report = AnalyzeGaps(nil, []RoleRequirement{{Skill: "Go", Required: 0}})
	require.Equal(t, 100, report.Gaps[0].MatchPercent)
	require.Equal(t, 0, report.Gaps[0].Gap)
}

func TestAnalyzeGapsGapFormula(t *testing.T) {
	// gap == max(0, required-current) across the full level grid.
	for current := 0; current <= 5; current++ {
		for required := 1; required <= 5; required++ {
			report := AnalyzeGaps(
				[]UserSkill{{Skill: "X", Level: current}},
				[]RoleRequirement{{Skill: "X", Required: required}},
			)

			want := required - current
			if want < 0 {
				want = 0
			}
			require.Equal(t, want, report.Gaps[0].Gap)
			require.GreaterOrEqual(t, report.Gaps[0].Gap, 0)
		}
	}
}
