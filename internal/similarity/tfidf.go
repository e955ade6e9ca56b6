package similarity

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/keywords"
)

var tfidfTokenRe = regexp.MustCompile(`\b[a-zA-Z0-9]{2,}\b`)

// tfidfTokens lowercases the text and returns its tokens with English
// stop words removed.
func tfidfTokens(text string) []string {
	raw := tfidfTokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if keywords.IsStopWord(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// termCounts builds raw term frequencies over unigrams and bigrams.
func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens)*2)
	for i, t := range tokens {
		counts[t]++
		if i+1 < len(tokens) {
			counts[t+" "+tokens[i+1]]++
		}
	}
	return counts
}

// TFIDF computes the cosine similarity of the two texts under a TF-IDF
// weighting built from just this document pair. Unigrams and bigrams
// both contribute, and inverse document frequency is smoothed so terms
// present in both documents still carry weight. Returns a value in
// [0, 1] rounded to four decimal places, or 0 when either document has
// no usable terms.
func TFIDF(a, b string) float64 {
	countsA := termCounts(tfidfTokens(a))
	countsB := termCounts(tfidfTokens(b))
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0
	}

	vocab := make([]string, 0, len(countsA)+len(countsB))
	seen := make(map[string]bool, len(countsA)+len(countsB))
	for term := range countsA {
		if !seen[term] {
			seen[term] = true
			vocab = append(vocab, term)
		}
	}
	for term := range countsB {
		if !seen[term] {
			seen[term] = true
			vocab = append(vocab, term)
		}
	}

	// idf(t) = ln((1+n)/(1+df)) + 1 over the two-document corpus.
	const n = 2.0
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((1+n)/(1+df)) + 1
		vecA[i] = countsA[term] * idf
		vecB[i] = countsB[term] * idf
	}
	return round4(cosine(vecA, vecB))
}
