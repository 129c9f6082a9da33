package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// Generator produces short free-form text from a system instruction and a
// user message. An empty completion is reported as an error by implementations
// so callers can apply their fallback uniformly.
type Generator interface {
	Generate(ctx context.Context, system, user string) (GenerationResult, error)
}

// HealthChecker verifies provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// GenerationResult carries the completion text and token usage.
type GenerationResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
