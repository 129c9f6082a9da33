package domain

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.3, -0.7, 0.2, 0.9},
		{5},
	}
	for _, v := range vectors {
		got, err := CosineSimilarity(v, v)
		if err != nil {
			t.Fatalf("CosineSimilarity(v, v): %v", err)
		}
		if !almostEqual(got, 1) {
			t.Errorf("self-similarity of %v = %v, want 1", v, got)
		}
	}
}

func TestCosineSimilarity_NegationIsMinusOne(t *testing.T) {
	v := []float32{0.5, -1.5, 2, 0.25}
	neg := make([]float32, len(v))
	for i, x := range v {
		neg[i] = -x
	}

	got, err := CosineSimilarity(v, neg)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if !almostEqual(got, -1) {
		t.Errorf("similarity to negation = %v, want -1", got)
	}
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	other := []float32{1, 2, 3}

	for _, pair := range [][2][]float32{{zero, other}, {other, zero}, {zero, zero}} {
		got, err := CosineSimilarity(pair[0], pair[1])
		if err != nil {
			t.Fatalf("CosineSimilarity: %v", err)
		}
		if got != 0 {
			t.Errorf("similarity with zero vector = %v, want 0", got)
		}
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{0.1, 0.9, -0.4}
	b := []float32{-0.2, 0.5, 0.8}

	ab, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity(a, b): %v", err)
	}
	ba, err := CosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(b, a): %v", err)
	}
	if !almostEqual(ab, ba) {
		t.Errorf("asymmetric: a·b = %v, b·a = %v", ab, ba)
	}
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	got, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if !almostEqual(got, 0) {
		t.Errorf("orthogonal similarity = %v, want 0", got)
	}
}

func TestCosineSimilarity_DimMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
	if !errors.Is(err, ErrVectorDimMismatch) {
		t.Fatalf("err = %v, want ErrVectorDimMismatch", err)
	}
}
