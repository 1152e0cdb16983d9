package types

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisMethod marks how a fit score was produced
type AnalysisMethod string

// Analysis method tags
const (
	AnalysisByModel     AnalysisMethod = "model"
	AnalysisByHeuristic AnalysisMethod = "heuristic"
	AnalysisSkipped     AnalysisMethod = "skipped"
)

// ImprovementItem is a single piece of targeted resume advice
type ImprovementItem struct {
	Area   string `json:"area"`
	Advice string `json:"advice"`
}

// AnalysisResult is the outcome of scoring a resume against a job description.
// FitScore is nil when no job description was supplied.
type AnalysisResult struct {
	FitScore        *float64          `json:"fit_score,omitempty"`
	MatchedSkills   []string          `json:"matched_skills"`
	MissingSkills   []string          `json:"missing_skills"`
	Recommendation  string            `json:"recommendation"`
	ImprovementPlan []ImprovementItem `json:"improvement_plan"`
	JobTitle        string            `json:"job_title,omitempty"`
	Company         string            `json:"company,omitempty"`
	Method          AnalysisMethod    `json:"method"`
	Entities        ExtractedEntities `json:"entities"`
}

// CandidateProfile is the persisted record produced by one pipeline run.
// Analysis is nil until a fit analysis has been stored for the profile.
type CandidateProfile struct {
	ID        uuid.UUID         `json:"id"`
	ResumeID  string            `json:"resume_id"`
	Entities  ExtractedEntities `json:"entities"`
	Analysis  *AnalysisResult   `json:"analysis,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
