package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/resume-insights/internal/types"
)

// NotFoundError indicates that no profile exists for the given ID.
type NotFoundError struct {
	ProfileID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// SaveProfile stores extracted entities as a new candidate profile and
// returns the stored record.
func (db *DB) SaveProfile(ctx context.Context, resumeID string, entities types.ExtractedEntities) (*types.CandidateProfile, error) {
	entitiesJSON, err := json.Marshal(entities)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}

	profile := &types.CandidateProfile{
		ID:       uuid.New(),
		ResumeID: resumeID,
		Entities: entities,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidate_profiles (id, resume_id, entities)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		profile.ID, resumeID, entitiesJSON,
	).Scan(&profile.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// SaveAnalysis attaches a fit analysis result to an existing profile.
// Re-analyzing a profile replaces the previous result.
func (db *DB) SaveAnalysis(ctx context.Context, profileID uuid.UUID, result types.AnalysisResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO fit_analyses (profile_id, result)
		 VALUES ($1, $2)
		 ON CONFLICT (profile_id) DO UPDATE SET result = $2, created_at = NOW()`,
		profileID, resultJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503: foreign_key_violation, the profile row is missing
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return &NotFoundError{ProfileID: profileID}
		}
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile with its analysis result, if any.
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*types.CandidateProfile, error) {
	var (
		profile      types.CandidateProfile
		entitiesJSON []byte
		resultJSON   []byte
		createdAt    time.Time
	)

	err := db.pool.QueryRow(ctx,
		`SELECT p.id, p.resume_id, p.entities, p.created_at, a.result
		 FROM candidate_profiles p
		 LEFT JOIN fit_analyses a ON a.profile_id = p.id
		 WHERE p.id = $1`,
		profileID,
	).Scan(&profile.ID, &profile.ResumeID, &entitiesJSON, &createdAt, &resultJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{ProfileID: profileID}
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.CreatedAt = createdAt
	if err := json.Unmarshal(entitiesJSON, &profile.Entities); err != nil {
		return nil, fmt.Errorf("failed to decode stored entities: %w", err)
	}
	if len(resultJSON) > 0 {
		var result types.AnalysisResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("failed to decode stored analysis: %w", err)
		}
		profile.Analysis = &result
	}

	return &profile, nil
}

// ListProfiles retrieves recent profiles for a resume, newest first.
func (db *DB) ListProfiles(ctx context.Context, resumeID string, limit int) ([]types.CandidateProfile, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, entities, created_at
		 FROM candidate_profiles
		 WHERE resume_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.CandidateProfile
	for rows.Next() {
		var (
			profile      types.CandidateProfile
			entitiesJSON []byte
		)
		if err := rows.Scan(&profile.ID, &profile.ResumeID, &entitiesJSON, &profile.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if err := json.Unmarshal(entitiesJSON, &profile.Entities); err != nil {
			return nil, fmt.Errorf("failed to decode stored entities: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
