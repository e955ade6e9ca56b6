// Package server - handlers.go implements the matching API endpoints.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/optimizing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// decodeRequest parses and validates a JSON request body.
func decodeRequest[T interface{ Validate() error }](r *http.Request, req T) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &ErrMalformedBody{Cause: err}
	}
	if err := req.Validate(); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleAnalyze extracts the structured signals from one document.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.Type == "job" {
		s.jsonResponse(w, http.StatusOK, optimizing.AnalyzeJob(req.Content))
		return
	}
	s.jsonResponse(w, http.StatusOK, optimizing.AnalyzeResume(req.Content))
}

// handleMatch scores a resume against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	score := s.scorer.Score(r.Context(), req.ResumeContent, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, score)
}

// handleOptimize returns the full optimization report.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.optimizer.Optimize(r.Context(), req.ResumeContent, req.JobDescription)
	slog.Info("optimization complete",
		"request_id", logger.RequestID(r.Context()),
		"overall_score", result.MatchScore.OverallScore,
		"ai_powered", result.AIPowered)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleKeywords reports keyword overlap between the two documents.
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_keywords":  keywords.Extract(req.ResumeContent, keywords.DefaultTopN),
		"job_keywords":     keywords.Extract(req.JobDescription, keywords.DefaultTopN),
		"missing_keywords": keywords.Missing(req.JobDescription, req.ResumeContent, keywords.DefaultTopN),
		"overlap":          keywords.Overlap(req.ResumeContent, req.JobDescription),
	})
}

// handleFetchJob retrieves a job posting URL and returns its text.
func (s *Server) handleFetchJob(w http.ResponseWriter, r *http.Request) {
	var req types.FetchJobRequest
	if err := decodeRequest(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := fetch.JobPosting(r.Context(), req.URL, req.UseBrowser, nil)
	if err != nil {
		slog.Warn("job fetch failed",
			"request_id", logger.RequestID(r.Context()), "url", req.URL, "error", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
