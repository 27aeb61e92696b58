package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/analysis"
	"github.com/jonathan/talent-match/internal/audit"
)

// EvaluateRequest represents the request body for /api/evaluate
type EvaluateRequest struct {
	CVText   string `json:"cv_text"`
	JobTitle string `json:"job_title"`
}

// handleEvaluate runs a full evaluation and returns the result
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.CVText == "" {
		s.errorResponse(w, http.StatusBadRequest, "cv_text is required")
		return
	}
	if req.JobTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_title is required")
		return
	}

	result, err := s.analyzer.Evaluate(r.Context(), req.CVText, req.JobTitle)
	if err != nil {
		s.logger.Error("evaluation failed", zap.Error(err))
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetSession returns the full audit trail for a session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	trail, err := s.recorder.Load(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, trail)
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	var extractionErr *analysis.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadGateway
	}
	var sessionErr *audit.SessionStateError
	if errors.As(err, &sessionErr) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
