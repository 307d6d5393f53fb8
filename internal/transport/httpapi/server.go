// Package httpapi exposes the ranking pipeline over a small chi REST
// surface. The API is a thin collaborator: it decodes plain text in, emits
// structured ranked results out.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/domain"
	"github.com/hirelens/hirelens/internal/export"
	"github.com/hirelens/hirelens/internal/metrics"
	"github.com/hirelens/hirelens/internal/usecase/explain"
)

// Ranker scores a resume batch against a job description.
type Ranker interface {
	Rank(ctx context.Context, jdText string, resumes []domain.Resume, settings domain.Settings) ([]domain.CandidateResult, error)
}

// Explainer generates a recruiter-facing explanation for one result.
type Explainer interface {
	Explain(ctx context.Context, req explain.Request) (string, error)
}

// Server is the HTTP API server.
type Server struct {
	ranker    Ranker
	explainer Explainer
	health    domain.HealthChecker
	settings  domain.Settings
	logger    *zap.Logger
}

// NewServer creates an HTTP API server. health may be nil when the embedder
// offers no health check.
func NewServer(
	ranker Ranker, explainer Explainer, health domain.HealthChecker,
	settings domain.Settings, logger *zap.Logger,
) *Server {
	return &Server{
		ranker:    ranker,
		explainer: explainer,
		health:    health,
		settings:  settings,
		logger:    logger,
	}
}

// Handler builds the chi router with middleware and all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/v1/rank", s.handleRank)
	r.Post("/v1/rank/csv", s.handleRankCSV)
	r.Post("/v1/explain", s.handleExplain)

	return r
}

type rankRequest struct {
	JDText  string          `json:"jd_text"`
	Resumes []domain.Resume `json:"resumes"`
}

type rankResponse struct {
	Results []domain.CandidateResult `json:"results"`
}

// handleRank handles POST /v1/rank.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	results, ok := s.rank(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{Results: results})
}

// handleRankCSV handles POST /v1/rank/csv: same input as /v1/rank, tabular output.
func (s *Server) handleRankCSV(w http.ResponseWriter, r *http.Request) {
	results, ok := s.rank(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ranked_candidates.csv"`)
	if err := export.WriteCSV(w, results); err != nil {
		s.logger.Error("Failed to stream CSV", zap.Error(err))
	}
}

func (s *Server) rank(w http.ResponseWriter, r *http.Request) ([]domain.CandidateResult, bool) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return nil, false
	}

	results, err := s.ranker.Rank(r.Context(), req.JDText, req.Resumes, s.settings)
	if err != nil {
		s.handleDomainError(w, err)
		return nil, false
	}
	return results, true
}

type explainRequest struct {
	JDText             string                   `json:"jd_text"`
	MatchedSkills      []string                 `json:"matched_skills"`
	MissingSkills      []string                 `json:"missing_skills"`
	EvidenceSnippets   []string                 `json:"evidence_snippets"`
	BiasSensitiveFound domain.SensitiveFindings `json:"bias_sensitive_found"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// handleExplain handles POST /v1/explain.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if s.explainer == nil {
		writeError(w, http.StatusNotImplemented, "not_implemented", "Explanation generation is not configured")
		return
	}

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.JDText == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "jd_text is required")
		return
	}

	text, err := s.explainer.Explain(r.Context(), explain.Request{
		JDText:           req.JDText,
		MatchedSkills:    req.MatchedSkills,
		MissingSkills:    req.MissingSkills,
		EvidenceSnippets: req.EvidenceSnippets,
		SensitiveFound:   req.BiasSensitiveFound,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{Explanation: text})
}

// handleHealth handles GET /healthz, pinging the embedding provider when a
// health checker is wired.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.HealthCheck(r.Context()); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDomainError maps domain sentinels to HTTP responses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyJobDescription):
		writeError(w, http.StatusBadRequest, "validation_failed", "Job description is empty")
	case errors.Is(err, domain.ErrNoResumes):
		writeError(w, http.StatusBadRequest, "validation_failed", "At least one resume is required")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		s.logger.Error("Embedding provider error", zap.Error(err))
		writeError(w, http.StatusBadGateway, "embedding_provider_error", err.Error())
	case errors.Is(err, domain.ErrExplanationProviderError):
		s.logger.Error("Explanation provider error", zap.Error(err))
		writeError(w, http.StatusBadGateway, "explanation_provider_error", err.Error())
	default:
		s.logger.Error("Internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
