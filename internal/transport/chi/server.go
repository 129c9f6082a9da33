// Package chi exposes the HTTP API: recommendations, history, health, metrics.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/promptrec/internal/domain"
	"github.com/kailas-cloud/promptrec/internal/logger"
	healthuc "github.com/kailas-cloud/promptrec/internal/usecase/health"
)

// Recommender runs the recommendation pipeline.
type Recommender interface {
	Recommend(ctx context.Context, domainText string, existing []string) ([]domain.Recommendation, error)
}

// HistoryReader reads persisted recommendation records.
type HistoryReader interface {
	ListByUser(ctx context.Context, user string, limit int) ([]domain.Record, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the use case services into HTTP handlers.
type Server struct {
	recommender   Recommender
	history       HistoryReader
	health        HealthChecker
	historyLimit  int
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. history may be nil to disable GET /history.
func NewServer(recommender Recommender, history HistoryReader, health HealthChecker, historyLimit int, log *zap.Logger) *Server {
	s := &Server{
		recommender:  recommender,
		history:      history,
		health:       health,
		historyLimit: historyLimit,
		logger:       log,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest,
			codeValidationFailed, "Invalid request. Domain and prompts array are required."),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway,
			codeEmbeddingProviderError, "Failed to get recommendations"),
		sentinelHandler(domain.ErrMissingCredentials, http.StatusInternalServerError,
			codeConfigurationError, "Server configuration error. Please try again later."),
	}
	return s
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/recommendations", s.CreateRecommendations)
	r.Get("/history", s.ListHistory)
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// recommendRequest is the POST /recommendations body.
type recommendRequest struct {
	Domain  string   `json:"domain"`
	Prompts []string `json:"prompts"`
}

type recommendationItem struct {
	Prompt      string  `json:"prompt"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation"`
}

type recommendResponse struct {
	Recommendations []recommendationItem `json:"recommendations"`
}

// CreateRecommendations handles POST /recommendations.
func (s *Server) CreateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"Invalid request. Domain and prompts array are required.")
		return
	}

	recs, err := s.recommender.Recommend(r.Context(), req.Domain, req.Prompts)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	items := make([]recommendationItem, len(recs))
	for i, rec := range recs {
		items[i] = recommendationItem{
			Prompt:      rec.Prompt,
			Similarity:  rec.Similarity,
			Explanation: rec.Explanation,
		}
	}
	writeJSON(w, http.StatusOK, recommendResponse{Recommendations: items})
}

type historyItem struct {
	Domain      string    `json:"domain"`
	Prompt      string    `json:"prompt"`
	Similarity  float64   `json:"similarity"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
}

type historyResponse struct {
	User    string        `json:"user"`
	Records []historyItem `json:"records"`
}

// ListHistory handles GET /history for the resolved caller identity.
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, codeBadRequest, "history is not enabled")
		return
	}

	limit := s.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a positive integer")
			return
		}
		if n < limit {
			limit = n
		}
	}

	user := domain.UserFromContext(r.Context())
	records, err := s.history.ListByUser(r.Context(), user, limit)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	items := make([]historyItem, len(records))
	for i, rec := range records {
		items[i] = historyItem{
			Domain:      rec.Domain,
			Prompt:      rec.Prompt,
			Similarity:  rec.Similarity,
			Explanation: rec.Explanation,
			CreatedAt:   rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, historyResponse{User: user, Records: items})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health handles GET /health. Degraded components yield 503.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// handleDomainError walks the handler chain; unmatched errors become a
// generic 500. The underlying cause is logged server-side only.
func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	logger.FromContext(ctx).Error("request failed", zap.Error(err))

	for _, handle := range s.errorHandlers {
		if handle(w, err) {
			return
		}
	}
	writeError(w, http.StatusInternalServerError, codeInternalError, "Failed to get recommendations")
}

func sentinelHandler(sentinel error, status int, code errorCode, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if errors.Is(err, sentinel) {
			writeError(w, status, code, message)
			return true
		}
		return false
	}
}
