package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kailas-cloud/promptrec/internal/domain"
	"github.com/kailas-cloud/promptrec/internal/pool"
)

// scored is one candidate with its similarity to the domain.
type scored struct {
	prompt     string
	similarity float64
}

// rank scores every eligible candidate against the domain and returns the
// topK highest, sorted by similarity descending. Ties keep pool insertion
// order (stable sort). Any embedding failure fails the whole rank: a partial
// ranking over an incomplete candidate set would be silently wrong.
func (s *Service) rank(ctx context.Context, domainText string, existing []string) ([]scored, error) {
	unused := pool.Unused(s.pool, existing)
	if len(unused) == 0 {
		return nil, nil
	}

	domainRes, err := s.embed.Embed(ctx, domainText)
	if err != nil {
		return nil, fmt.Errorf("embed domain: %w", err)
	}

	vectors, err := s.embedAll(ctx, unused)
	if err != nil {
		return nil, err
	}

	results := make([]scored, len(unused))
	for i, prompt := range unused {
		sim, err := domain.CosineSimilarity(domainRes.Embedding, vectors[i])
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", prompt, err)
		}
		results[i] = scored{prompt: prompt, similarity: sim}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].similarity > results[j].similarity
	})

	if len(results) > s.topK {
		results = results[:s.topK]
	}
	return results, nil
}

// embedAll fetches embeddings for all texts concurrently. The candidate pool
// is small (~100), so the fan-out is unbounded. First error wins.
func (s *Service) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			res, err := s.embed.Embed(ctx, text)
			if err != nil {
				errs[i] = fmt.Errorf("embed candidate %q: %w", text, err)
				return
			}
			vectors[i] = res.Embedding
		}(i, text)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return vectors, nil
}
