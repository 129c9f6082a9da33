package domain

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between two vectors,
// used as a semantic closeness score in [-1, 1].
//
// Both vectors must come from the same embedding model: a length mismatch is
// a caller bug and fails fast instead of silently truncating. A zero-magnitude
// vector is treated as maximally dissimilar (score 0) rather than undefined.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrVectorDimMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
