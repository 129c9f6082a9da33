package domain

import "errors"

var (
	// ErrInvalidInput signals a malformed client request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingCredentials signals an absent provider API key.
	ErrMissingCredentials = errors.New("missing provider credentials")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationProviderError signals a text generation provider failure.
	ErrGenerationProviderError = errors.New("generation provider error")
)
