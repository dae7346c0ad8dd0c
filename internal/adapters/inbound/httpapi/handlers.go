package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/antekerwin/jeki/internal/domain"
)

// maxBodyBytes bounds request bodies; posts are a few hundred characters.
const maxBodyBytes = 64 << 10

type analyzeRequest struct {
	Content string `json:"content"`
}

type analyzeResponse struct {
	Success  bool                  `json:"success"`
	Analysis *domain.QualityReport `json:"analysis"`
}

type generateResponse struct {
	Success  bool                 `json:"success"`
	Content  string               `json:"content"`
	Source   string               `json:"source"`
	Style    string               `json:"style,omitempty"`
	Analysis domain.QualityReport `json:"analysis"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.services.Home.Home(r.Context()))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.services.Analyze.Analyze(r.Context(), req.Content)
	switch {
	case errors.Is(err, domain.ErrEmptyContent):
		s.writeError(w, http.StatusBadRequest, "Content required")
		return
	case err != nil:
		s.logger.Error("analyze failed", zap.Error(err), zap.String("request_id", requestIDFrom(r.Context())))
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Analysis: report})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if !s.decode(w, r, &req) {
		return
	}

	gen, err := s.services.Generate.Generate(r.Context(), req)
	switch {
	case errors.Is(err, domain.ErrEmptyProject):
		s.writeError(w, http.StatusBadRequest, "Project required")
		return
	case err != nil:
		s.logger.Error("generate failed", zap.Error(err), zap.String("request_id", requestIDFrom(r.Context())))
		s.writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		Success:  true,
		Content:  gen.Content,
		Source:   gen.Source,
		Style:    gen.Style,
		Analysis: gen.Analysis,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.services.Home.Projects(r.Context()))
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.services.Analyze.Rules())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, "not found")
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
