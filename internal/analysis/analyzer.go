// Package analysis scores a resume against a job description. The
// primary strategy asks a generative model for a structured verdict;
// when the model call or its output fails, scoring degrades to keyword
// heuristics rather than surfacing an error.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/prompts"
	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/types"
)

// Prompt size caps keep the model request bounded regardless of
// document size.
const (
	maxCVChars = 5000
	maxJDChars = 3000
)

// noJobDescriptionRecommendation is returned when scoring is skipped.
const noJobDescriptionRecommendation = "No job description was provided, so the resume was not scored. Supply a job description to receive a fit score."

// Analyzer produces an AnalysisResult for one pipeline run. A single
// model failure falls straight to the heuristic; it is never retried.
type Analyzer struct {
	client llm.Client
	logger *zap.Logger
}

// NewAnalyzer builds an analyzer over the given model client. A nil
// client forces heuristic scoring.
func NewAnalyzer(client llm.Client, logger *zap.Logger) *Analyzer {
	return &Analyzer{client: client, logger: logging.OrNop(logger)}
}

// Analyze scores the resume against the job description. With no job
// description, scoring is skipped entirely and FitScore stays unset.
func (a *Analyzer) Analyze(ctx context.Context, entities types.ExtractedEntities, cvText, jobDescription string) types.AnalysisResult {
	if strings.TrimSpace(jobDescription) == "" {
		return types.AnalysisResult{
			Recommendation:  noJobDescriptionRecommendation,
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			ImprovementPlan: []types.ImprovementItem{},
			Method:          types.AnalysisSkipped,
			Entities:        entities,
		}
	}

	result, err := a.analyzeWithModel(ctx, entities, cvText, jobDescription)
	if err != nil {
		a.logger.Warn("model scoring failed, falling back to keyword heuristic", zap.Error(err))
		return heuristicResult(entities, jobDescription)
	}
	return result
}

// modelFitResult mirrors the JSON contract with the generative model.
// Field matching is case-insensitive, which encoding/json gives us.
type modelFitResult struct {
	FitScore        float64                 `json:"fit_score"`
	MatchReasoning  string                  `json:"match_reasoning"`
	MatchedSkills   []string                `json:"matched_skills"`
	MissingSkills   []string                `json:"missing_skills"`
	ImprovementPlan []types.ImprovementItem `json:"improvement_plan"`
	JobTitle        string                  `json:"job_title"`
	Company         string                  `json:"company"`
}

func (a *Analyzer) analyzeWithModel(ctx context.Context, entities types.ExtractedEntities, cvText, jobDescription string) (types.AnalysisResult, error) {
	if a.client == nil {
		return types.AnalysisResult{}, errNoClient
	}

	prompt := buildFitPrompt(cvText, jobDescription)
	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateFitResult(raw); err != nil {
		return types.AnalysisResult{}, err
	}

	var parsed modelFitResult
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.AnalysisResult{}, err
	}

	score := parsed.FitScore
	result := types.AnalysisResult{
		FitScore:        &score,
		MatchedSkills:   orEmpty(parsed.MatchedSkills),
		MissingSkills:   orEmpty(parsed.MissingSkills),
		Recommendation:  parsed.MatchReasoning,
		ImprovementPlan: parsed.ImprovementPlan,
		JobTitle:        parsed.JobTitle,
		Company:         parsed.Company,
		Method:          types.AnalysisByModel,
		Entities:        entities,
	}
	if result.ImprovementPlan == nil {
		result.ImprovementPlan = []types.ImprovementItem{}
	}
	return result, nil
}

// buildFitPrompt renders the scoring prompt with both inputs truncated
// to their caps.
func buildFitPrompt(cvText, jobDescription string) string {
	template := prompts.MustGet("analysis.json", "fit-analysis")
	return prompts.Format(template, map[string]string{
		"CVText":         truncate(cvText, maxCVChars),
		"JobDescription": truncate(jobDescription, maxJDChars),
	})
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var errNoClient = errors.New("no model client configured")
