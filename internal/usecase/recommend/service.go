// Package recommend implements the prompt recommendation pipeline: rank the
// candidate pool against a domain description, explain the winners, and hand
// the results to best-effort persistence.
package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/promptrec/internal/domain"
	"github.com/kailas-cloud/promptrec/internal/logger"
	"github.com/kailas-cloud/promptrec/internal/metrics"
)

// FallbackExplanation replaces a rationale when generation fails. The caller
// still gets a full recommendation list.
const FallbackExplanation = "Highly relevant to your domain"

const explainSystemPrompt = "You're a helpful AI assistant. For the given prompt and domain, " +
	"generate a concise one-sentence explanation of why the prompt is relevant to that domain."

const defaultTopK = 5

// Service runs the recommendation pipeline for one request at a time.
// The candidate pool is injected at construction and never mutated.
type Service struct {
	pool    []string
	embed   Embedder
	explain Explainer
	history HistoryWriter

	topK           int
	persistTimeout time.Duration

	// persistWG tracks detached history writes so tests and shutdown can
	// wait for them; the response path never does.
	persistWG sync.WaitGroup
}

// New creates a recommendation service. history may be nil to disable persistence.
func New(pool []string, embed Embedder, explain Explainer, history HistoryWriter) *Service {
	return &Service{
		pool:           pool,
		embed:          embed,
		explain:        explain,
		history:        history,
		topK:           defaultTopK,
		persistTimeout: 10 * time.Second,
	}
}

// WithTopK overrides the number of recommendations returned.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// Recommend executes one end-to-end request: validate, rank, explain,
// detach a best-effort history write, and return the recommendations.
// The returned slice is empty (not an error) when the pool is exhausted.
func (s *Service) Recommend(ctx context.Context, domainText string, existing []string) ([]domain.Recommendation, error) {
	trimmed := strings.TrimSpace(domainText)
	if trimmed == "" {
		return nil, fmt.Errorf("domain is required: %w", domain.ErrInvalidInput)
	}

	user := domain.UserFromContext(ctx)
	log := logger.FromContext(ctx)

	ranked, err := s.rank(ctx, domainText, existing)
	if err != nil {
		return nil, err
	}

	recs := s.explainAll(ctx, ranked, domainText)

	if s.history != nil && len(recs) > 0 {
		s.persistDetached(log, recs, trimmed, user)
	}

	return recs, nil
}

// explainAll generates rationales for all ranked candidates concurrently.
// Each failure is absorbed locally with the fallback text.
func (s *Service) explainAll(ctx context.Context, ranked []scored, domainText string) []domain.Recommendation {
	log := logger.FromContext(ctx)
	recs := make([]domain.Recommendation, len(ranked))

	var wg sync.WaitGroup
	for i, sc := range ranked {
		wg.Add(1)
		go func(i int, sc scored) {
			defer wg.Done()

			explanation := FallbackExplanation
			userMsg := fmt.Sprintf("Prompt: %s\nDomain: %s", sc.prompt, domainText)

			res, err := s.explain.Generate(ctx, explainSystemPrompt, userMsg)
			if err != nil {
				metrics.ExplanationFallbacksTotal.Inc()
				log.Warn("explanation generation failed, using fallback",
					zap.String("prompt", sc.prompt),
					zap.Error(err),
				)
			} else {
				explanation = res.Content
			}

			recs[i] = domain.Recommendation{
				Prompt:      sc.prompt,
				Similarity:  sc.similarity,
				Explanation: explanation,
			}
		}(i, sc)
	}
	wg.Wait()

	return recs
}

// persistDetached spawns a fire-and-forget history write. The outcome is
// logged and counted, never surfaced to the caller.
func (s *Service) persistDetached(log *zap.Logger, recs []domain.Recommendation, domainText, user string) {
	now := time.Now().UTC()
	records := make([]domain.Record, len(recs))
	for i, rec := range recs {
		records[i] = domain.Record{
			Domain:      domainText,
			Prompt:      rec.Prompt,
			Similarity:  rec.Similarity,
			Explanation: rec.Explanation,
			User:        user,
			CreatedAt:   now,
		}
	}

	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()

		// Detached from the request context: the response must not wait on
		// (or be cancelled with) this write.
		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		defer cancel()

		saved, err := s.history.SaveMany(ctx, records)
		if err != nil {
			metrics.HistoryWritesTotal.WithLabelValues("error").Inc()
			log.Warn("failed to save recommendation history",
				zap.String("user", user),
				zap.Error(err),
			)
			return
		}
		metrics.HistoryWritesTotal.WithLabelValues("success").Inc()
		log.Debug("saved recommendation history",
			zap.String("user", user),
			zap.Int("records", saved),
		)
	}()
}

// Drain waits for in-flight history writes. Called during shutdown.
func (s *Service) Drain() {
	s.persistWG.Wait()
}
