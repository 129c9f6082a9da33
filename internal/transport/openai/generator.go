package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/promptrec/internal/domain"
	"github.com/kailas-cloud/promptrec/internal/metrics"
)

const kindGeneration = "generation"

// Generator produces short completions using the OpenAI-compatible chat API.
// An empty completion is reported as an error so callers can apply their
// fallback uniformly.
type Generator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// GeneratorConfig holds the generation provider settings.
type GeneratorConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      *zap.Logger
}

// NewGenerator creates an OpenAI-compatible chat completion provider.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}
}

// Generate implements domain.Generator with transport-level metrics.
func (g *Generator) Generate(ctx context.Context, system, user string) (domain.GenerationResult, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(kindGeneration, g.model, "error").Inc()
		metrics.ProviderErrorsTotal.WithLabelValues(kindGeneration, g.model, "api_error").Inc()
		return domain.GenerationResult{}, parseAPIError(err, domain.ErrGenerationProviderError)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if content == "" {
		metrics.ProviderRequestsTotal.WithLabelValues(kindGeneration, g.model, "error").Inc()
		metrics.ProviderErrorsTotal.WithLabelValues(kindGeneration, g.model, "empty_response").Inc()
		return domain.GenerationResult{}, fmt.Errorf("empty completion: %w", domain.ErrGenerationProviderError)
	}

	metrics.ProviderRequestsTotal.WithLabelValues(kindGeneration, g.model, "success").Inc()
	metrics.ProviderRequestDuration.WithLabelValues(kindGeneration, g.model).Observe(duration.Seconds())

	usage := resp.Usage
	if usage.TotalTokens > 0 {
		metrics.ProviderTokensTotal.WithLabelValues(kindGeneration, g.model, "prompt").Add(float64(usage.PromptTokens))
		metrics.ProviderTokensTotal.WithLabelValues(kindGeneration, g.model, "completion").Add(float64(usage.CompletionTokens))
		metrics.ProviderTokensTotal.WithLabelValues(kindGeneration, g.model, "total").Add(float64(usage.TotalTokens))
	}

	return domain.GenerationResult{
		Content:          content,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}, nil
}
