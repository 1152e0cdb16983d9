package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-insights/internal/skills"
	"github.com/jonathan/resume-insights/internal/types"
)

// Degraded-mode placeholders. Kept stable so downstream consumers can
// recognize heuristic output.
const (
	placeholderJobTitle = "Not specified"
	placeholderCompany  = "Not specified"

	degradedAdviceArea = "General"
	degradedAdvice     = "Detailed improvement suggestions are unavailable because the analysis ran in degraded keyword-matching mode. Re-run the analysis later for a full review."

	heuristicRecommendationPrefix = "Keyword-based estimate (degraded mode): "
)

// heuristicResult scores by intersecting the canonical skill vocabulary
// found in the job description with the resume's skills. When the job
// description yields no recognized skills, the score is 10 if the
// resume has any skills at all, else 0. Inherited business rule,
// preserved as-is.
func heuristicResult(entities types.ExtractedEntities, jobDescription string) types.AnalysisResult {
	jdSkills := skills.MatchSet(jobDescription)

	resumeSkills := make(map[string]bool, len(entities.Skills))
	for _, skill := range entities.Skills {
		resumeSkills[strings.ToLower(skill)] = true
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range skills.Canonical {
		display, inJD := jdSkills[strings.ToLower(skill)]
		if !inJD {
			continue
		}
		if resumeSkills[strings.ToLower(skill)] {
			matched = append(matched, display)
		} else {
			missing = append(missing, display)
		}
	}

	var score float64
	switch {
	case len(jdSkills) > 0:
		score = round1(float64(len(matched)) / float64(len(jdSkills)) * 100)
	case len(entities.Skills) > 0:
		score = 10
	default:
		score = 0
	}

	return types.AnalysisResult{
		FitScore:       &score,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Recommendation: heuristicRecommendation(len(matched), len(jdSkills)),
		ImprovementPlan: []types.ImprovementItem{
			{Area: degradedAdviceArea, Advice: degradedAdvice},
		},
		JobTitle: placeholderJobTitle,
		Company:  placeholderCompany,
		Method:   types.AnalysisByHeuristic,
		Entities: entities,
	}
}

func heuristicRecommendation(matched, total int) string {
	if total == 0 {
		return heuristicRecommendationPrefix + "the job description contained no recognized skills to match against."
	}
	return heuristicRecommendationPrefix +
		fmt.Sprintf("matched %d of %d skills found in the job description.", matched, total)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
