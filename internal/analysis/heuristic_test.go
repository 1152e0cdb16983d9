package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insights/internal/types"
)

func entitiesWithSkills(skills ...string) types.ExtractedEntities {
	return types.ExtractedEntities{
		Skills:             skills,
		Method:             types.MethodFallback,
		TotalEntitiesFound: len(skills),
	}
}

func TestHeuristicResult_ScoresByOverlap(t *testing.T) {
	// JD mentions Python, AWS, Kubernetes, Docker; resume has two of
	// the four.
	result := heuristicResult(
		entitiesWithSkills("Python", "AWS"),
		"We want Python, AWS, Kubernetes and Docker experience",
	)

	require.NotNil(t, result.FitScore)
	assert.Equal(t, 50.0, *result.FitScore)
	assert.ElementsMatch(t, []string{"Python", "AWS"}, result.MatchedSkills)
	assert.ElementsMatch(t, []string{"Kubernetes", "Docker"}, result.MissingSkills)
	assert.Equal(t, types.AnalysisByHeuristic, result.Method)
}

func TestHeuristicResult_RoundsToOneDecimal(t *testing.T) {
	// One of three JD skills matched: 33.333... rounds to 33.3.
	result := heuristicResult(
		entitiesWithSkills("Python"),
		"Python, Kubernetes and Docker",
	)

	require.NotNil(t, result.FitScore)
	assert.Equal(t, 33.3, *result.FitScore)
}

func TestHeuristicResult_CaseInsensitiveIntersection(t *testing.T) {
	result := heuristicResult(
		entitiesWithSkills("PYTHON"),
		"we want python developers",
	)

	require.NotNil(t, result.FitScore)
	assert.Equal(t, 100.0, *result.FitScore)
	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
}

// The score of 10 when the job description yields no recognized skills
// but the resume has some is an inherited business rule with no written
// rationale. It is preserved deliberately; do not "fix" it.
func TestHeuristicResult_NoJDSkillsButResumeHasSkills(t *testing.T) {
	result := heuristicResult(
		entitiesWithSkills("Python"),
		"we need a great communicator",
	)

	require.NotNil(t, result.FitScore)
	assert.Equal(t, 10.0, *result.FitScore)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestHeuristicResult_NoSkillsAnywhere(t *testing.T) {
	result := heuristicResult(
		entitiesWithSkills(),
		"we need a great communicator",
	)

	require.NotNil(t, result.FitScore)
	assert.Equal(t, 0.0, *result.FitScore)
}

func TestHeuristicResult_DegradedPlaceholders(t *testing.T) {
	result := heuristicResult(entitiesWithSkills("Python"), "Python")

	assert.Equal(t, placeholderJobTitle, result.JobTitle)
	assert.Equal(t, placeholderCompany, result.Company)
	require.Len(t, result.ImprovementPlan, 1)
	assert.Equal(t, degradedAdviceArea, result.ImprovementPlan[0].Area)
	assert.Contains(t, result.ImprovementPlan[0].Advice, "degraded")
}
