package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insights/internal/pipeline"
	"github.com/jonathan/resume-insights/internal/types"
)

// handleProcessResume starts a pipeline run for a stored document.
func (s *Server) handleProcessResume(w http.ResponseWriter, r *http.Request) {
	var req types.ProcessResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.Ingest(r.Context(), pipeline.IngestOptions{
		Bucket:         req.Bucket,
		Key:            req.Key,
		ResumeID:       req.ResumeID,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		RequesterID:    req.RequesterID,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyze is the receiving stage: it accepts a hand-off payload
// and runs entity extraction, fit scoring and persistence. A partial
// failure still reports the created profile.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload types.InvocationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := payload.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.service.Analyze(r.Context(), payload)
	if err != nil {
		var partial *pipeline.PartialFailureError
		if errors.As(err, &partial) {
			s.jsonResponse(w, http.StatusAccepted, map[string]any{
				"profile_id": partial.ProfileID,
				"warning":    partial.Error(),
			})
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, profile)
}

// handleGetProfile returns a stored profile with its analysis.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.profiles == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "profile storage is not configured")
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	profile, err := s.profiles.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
