package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_AnalysisOptional(t *testing.T) {
	profile := CandidateProfile{
		ID:        uuid.New(),
		ResumeID:  "resume-1",
		Entities:  ExtractedEntities{Name: "John Doe"},
		CreatedAt: time.Now().UTC(),
	}
	assert.Nil(t, profile.Analysis)

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"analysis"`)

	score := 72.5
	profile.Analysis = &AnalysisResult{
		FitScore: &score,
		Method:   AnalysisByModel,
	}

	data, err = json.Marshal(profile)
	require.NoError(t, err)

	var decoded CandidateProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Analysis)
	assert.Equal(t, 72.5, *decoded.Analysis.FitScore)
	assert.Equal(t, AnalysisByModel, decoded.Analysis.Method)
}
