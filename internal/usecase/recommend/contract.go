package recommend

import (
	"context"

	"github.com/kailas-cloud/promptrec/internal/domain"
)

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Explainer produces a rationale for a (prompt, domain) pair.
type Explainer interface {
	Generate(ctx context.Context, system, user string) (domain.GenerationResult, error)
}

// HistoryWriter persists recommendation records. Writes are best-effort:
// the pipeline only observes the outcome for logging.
type HistoryWriter interface {
	SaveMany(ctx context.Context, records []domain.Record) (int, error)
}
