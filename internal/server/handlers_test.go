package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insights/internal/db"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/pipeline"
	"github.com/jonathan/resume-insights/internal/types"
)

type fakeService struct {
	ingestResult  *pipeline.IngestResult
	ingestErr     error
	gotIngestOpts *pipeline.IngestOptions
	profile       *types.CandidateProfile
	analyzeErr    error
	gotPayload    *types.InvocationPayload
}

func (f *fakeService) Ingest(_ context.Context, opts pipeline.IngestOptions) (*pipeline.IngestResult, error) {
	f.gotIngestOpts = &opts
	return f.ingestResult, f.ingestErr
}

func (f *fakeService) Analyze(_ context.Context, payload types.InvocationPayload) (*types.CandidateProfile, error) {
	f.gotPayload = &payload
	return f.profile, f.analyzeErr
}

type fakeProfiles struct {
	profile *types.CandidateProfile
	err     error
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ uuid.UUID) (*types.CandidateProfile, error) {
	return f.profile, f.err
}

func newTestServer(service *fakeService, profiles ProfileGetter) *Server {
	return New(Config{Port: 0}, service, profiles, nil)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleProcessResume_Success(t *testing.T) {
	service := &fakeService{ingestResult: &pipeline.IngestResult{
		CorrelationID: "corr-1",
		ResumeID:      "resume-1",
		FileType:      types.FileTypePdf,
		TextLength:    120,
	}}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/resumes/process", types.ProcessResumeRequest{
		Bucket:         "resumes",
		Key:            "cv.pdf",
		JobDescription: "Looking for Python",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.gotIngestOpts)
	assert.Equal(t, "cv.pdf", service.gotIngestOpts.Key)

	var result pipeline.IngestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "corr-1", result.CorrelationID)
	assert.Equal(t, types.FileTypePdf, result.FileType)
}

func TestHandleProcessResume_MissingFields(t *testing.T) {
	service := &fakeService{}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/resumes/process", types.ProcessResumeRequest{
		Bucket: "resumes",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.gotIngestOpts)
}

func TestHandleProcessResume_InvalidJSON(t *testing.T) {
	srv := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/resumes/process", bytes.NewBufferString("{ not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleProcessResume_UnsupportedFileType(t *testing.T) {
	service := &fakeService{ingestErr: &ingestion.UnsupportedFileTypeError{Key: "cv.txt"}}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/resumes/process", types.ProcessResumeRequest{
		Bucket: "resumes",
		Key:    "cv.txt",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProcessResume_EmptyDocument(t *testing.T) {
	service := &fakeService{ingestErr: &pipeline.EmptyDocumentError{Key: "cv.pdf"}}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/resumes/process", types.ProcessResumeRequest{
		Bucket: "resumes",
		Key:    "cv.pdf",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleAnalyze_Accepted(t *testing.T) {
	profile := &types.CandidateProfile{
		ID:       uuid.New(),
		ResumeID: "resume-1",
		Entities: types.ExtractedEntities{Name: "John Doe"},
	}
	service := &fakeService{profile: profile}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/analyses", types.InvocationPayload{
		CorrelationID: "corr-1",
		ResumeID:      "resume-1",
		Text:          "John Doe\nEngineer",
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.NotNil(t, service.gotPayload)
	assert.Equal(t, "corr-1", service.gotPayload.CorrelationID)
	assert.Contains(t, rec.Body.String(), "John Doe")
}

func TestHandleAnalyze_MissingPayloadFields(t *testing.T) {
	service := &fakeService{}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/analyses", types.InvocationPayload{
		CorrelationID: "corr-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.gotPayload)
}

func TestHandleAnalyze_PartialFailure(t *testing.T) {
	profileID := uuid.New()
	service := &fakeService{analyzeErr: &pipeline.PartialFailureError{
		ProfileID: profileID,
		Completed: []string{"profile"},
		Failed:    "analysis",
		Cause:     errors.New("db down"),
	}}
	srv := newTestServer(service, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/analyses", types.InvocationPayload{
		CorrelationID: "corr-1",
		ResumeID:      "resume-1",
		Text:          "text",
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), profileID.String())
	assert.Contains(t, rec.Body.String(), "warning")
}

func TestHandleGetProfile_Success(t *testing.T) {
	profile := &types.CandidateProfile{ID: uuid.New(), ResumeID: "resume-1"}
	srv := newTestServer(&fakeService{}, &fakeProfiles{profile: profile})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/profiles/"+profile.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), profile.ID.String())
}

func TestHandleGetProfile_InvalidID(t *testing.T) {
	srv := newTestServer(&fakeService{}, &fakeProfiles{})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/profiles/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	missing := uuid.New()
	srv := newTestServer(&fakeService{}, &fakeProfiles{err: &db.NotFoundError{ProfileID: missing}})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/profiles/"+missing.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetProfile_NoStorage(t *testing.T) {
	srv := newTestServer(&fakeService{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/profiles/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeService{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
