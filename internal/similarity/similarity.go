// Package similarity scores how close two documents are, either through
// embedding vectors or through lexical fallbacks that need no network.
package similarity

import (
	"math"
	"strings"
)

// cosine computes the cosine similarity of two equal-length vectors.
// Mismatched lengths or zero-magnitude inputs yield 0.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// round4 rounds to four decimal places and clamps into [0, 1].
func round4(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*10000) / 10000
}

// WordOverlap returns the fraction of distinct words in b that also
// appear in a. Both texts are lowercased and split on whitespace.
// An empty b yields 0.
func WordOverlap(a, b string) float64 {
	aWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(a)) {
		aWords[w] = true
	}
	bWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(b)) {
		bWords[w] = true
	}
	if len(bWords) == 0 {
		return 0
	}
	matched := 0
	for w := range bWords {
		if aWords[w] {
			matched++
		}
	}
	return float64(matched) / float64(len(bWords))
}
