// Package pipeline provides the high-level orchestration for resume
// processing: the sending stage (extract, normalize, hand off) and the
// receiving stage (extract entities, score fit, persist).
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/types"
)

// Dispatcher hands a normalized payload to the receiving stage.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload types.InvocationPayload) error
}

// EntityExtractor pulls structured entities out of resume text.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) types.ExtractedEntities
}

// Analyzer scores a resume against a job description.
type Analyzer interface {
	Analyze(ctx context.Context, entities types.ExtractedEntities, cvText, jobDescription string) types.AnalysisResult
}

// ProfileStore persists candidate profiles and their analyses.
type ProfileStore interface {
	SaveProfile(ctx context.Context, resumeID string, entities types.ExtractedEntities) (*types.CandidateProfile, error)
	SaveAnalysis(ctx context.Context, profileID uuid.UUID, result types.AnalysisResult) error
}

// Service wires the pipeline stages together. Profiles may be nil, in
// which case analysis results are returned without being persisted.
type Service struct {
	extractor ingestion.Extractor
	dispatch  Dispatcher
	entities  EntityExtractor
	analyzer  Analyzer
	profiles  ProfileStore
	logger    *zap.Logger

	fetchJobDescription func(ctx context.Context, url string) (string, error)
}

// NewService builds a Service over the given collaborators.
func NewService(extractor ingestion.Extractor, dispatch Dispatcher, entities EntityExtractor, analyzer Analyzer, profiles ProfileStore, logger *zap.Logger) *Service {
	return &Service{
		extractor: extractor,
		dispatch:  dispatch,
		entities:  entities,
		analyzer:  analyzer,
		profiles:  profiles,
		logger:    logging.OrNop(logger),
		fetchJobDescription: func(ctx context.Context, url string) (string, error) {
			return fetch.JobDescription(ctx, url, nil)
		},
	}
}

// IngestOptions names a stored document and the job context for the
// run. JobURL is used when JobDescription is empty.
type IngestOptions struct {
	Bucket         string
	Key            string
	ResumeID       string
	JobDescription string
	JobURL         string
	RequesterID    string
}

// IngestResult summarizes a completed sending stage.
type IngestResult struct {
	CorrelationID string         `json:"correlation_id"`
	ResumeID      string         `json:"resume_id"`
	FileType      types.FileType `json:"file_type"`
	TextLength    int            `json:"text_length"`
}

// Ingest runs the sending stage: route by file type, extract text,
// normalize it, then hand the payload to the receiving stage. The
// returned correlation ID ties the hand-off to later log lines.
func (s *Service) Ingest(ctx context.Context, opts IngestOptions) (*IngestResult, error) {
	jobDescription := opts.JobDescription
	if jobDescription == "" && opts.JobURL != "" {
		fetched, err := s.fetchJobDescription(ctx, opts.JobURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job description: %w", err)
		}
		jobDescription = fetched
	}

	identity := types.NewDocumentIdentity(opts.Bucket, opts.Key)
	outcome, err := s.extractor.Extract(ctx, identity)
	if err != nil {
		return nil, err
	}

	text := normalize.Text(outcome.RawText)
	if !normalize.IsValid(text) {
		return nil, &EmptyDocumentError{Key: opts.Key}
	}

	resumeID := opts.ResumeID
	if resumeID == "" {
		resumeID = opts.Key
	}
	correlationID := uuid.New().String()

	payload := types.InvocationPayload{
		CorrelationID:  correlationID,
		ResumeID:       resumeID,
		Text:           text,
		JobDescription: jobDescription,
		RequesterID:    opts.RequesterID,
	}

	if err := s.dispatch.Dispatch(ctx, payload); err != nil {
		return nil, err
	}

	s.logger.Info("ingestion complete",
		append(logging.Run(correlationID, resumeID),
			zap.String("file_type", string(outcome.FileType)),
			zap.Int("text_length", len(text)))...)

	return &IngestResult{
		CorrelationID: correlationID,
		ResumeID:      resumeID,
		FileType:      outcome.FileType,
		TextLength:    len(text),
	}, nil
}

// Analyze runs the receiving stage on a hand-off payload: entity
// extraction, fit scoring, then persistence. When the analysis write
// fails after the profile write succeeded, the profile is returned
// alongside a PartialFailureError.
func (s *Service) Analyze(ctx context.Context, payload types.InvocationPayload) (*types.CandidateProfile, error) {
	extracted := s.entities.Extract(ctx, payload.Text)
	result := s.analyzer.Analyze(ctx, extracted, payload.Text, payload.JobDescription)

	if s.profiles == nil {
		return &types.CandidateProfile{
			ResumeID: payload.ResumeID,
			Entities: extracted,
			Analysis: &result,
		}, nil
	}

	profile, err := s.profiles.SaveProfile(ctx, payload.ResumeID, extracted)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if err := s.profiles.SaveAnalysis(ctx, profile.ID, result); err != nil {
		s.logger.Error("analysis write failed after profile write",
			append(logging.Run(payload.CorrelationID, payload.ResumeID),
				zap.String("profile_id", profile.ID.String()), zap.Error(err))...)
		return profile, &PartialFailureError{
			ProfileID: profile.ID,
			Completed: []string{"profile"},
			Failed:    "analysis",
			Cause:     err,
		}
	}

	profile.Analysis = &result
	s.logger.Info("analysis complete",
		append(logging.Run(payload.CorrelationID, payload.ResumeID),
			zap.String("profile_id", profile.ID.String()),
			zap.String("method", string(result.Method)))...)

	return profile, nil
}
