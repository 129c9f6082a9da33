package domain

import "time"

// Recommendation is one ranked prompt with its similarity score and a
// one-sentence rationale. Immutable after construction.
type Recommendation struct {
	Prompt      string
	Similarity  float64
	Explanation string
}

// Record is a Recommendation enriched with request metadata for persistence.
// The ranking path only ever writes records, it never reads them back.
type Record struct {
	Domain      string
	Prompt      string
	Similarity  float64
	Explanation string
	User        string
	CreatedAt   time.Time
}
