// Package keywords derives salient terms from free text using a stop-word
// filtered frequency count. Ranking is deterministic: frequency descending
// with ties broken by first appearance in the text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopN is the number of keywords returned when the caller does not
// specify a count.
const DefaultTopN = 20

var wordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// stopWords holds common English function words plus corporate-suffix
// tokens that carry no signal in job postings.
var stopWords = map[string]bool{
	"the": true, "and": true, "are": true, "for": true, "from": true,
	"has": true, "had": true, "have": true, "been": true, "was": true,
	"will": true, "with": true, "this": true, "that": true, "they": true,
	"their": true, "its": true, "not": true, "but": true, "what": true,
	"which": true, "who": true, "whom": true, "where": true, "when": true,
	"how": true, "why": true, "all": true, "any": true, "each": true,
	"can": true, "could": true, "should": true, "would": true, "may": true,
	"might": true, "must": true, "shall": true, "you": true, "your": true,
	"our": true, "out": true, "about": true, "into": true, "than": true,
	"then": true, "them": true, "there": true, "these": true, "those": true,
	"she": true, "his": true, "her": true, "him": true, "were": true,
	"inc": true, "llc": true, "corp": true, "ltd": true, "company": true,
}

// IsStopWord reports whether the lowercased token is on the stop list.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// Extract returns the topN most frequent non-stop-word tokens in the text,
// lowercased. Tokens are letters only and at least three characters long.
// A topN of zero or less selects DefaultTopN.
func Extract(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int
	for _, token := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stopWords[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	ranked := make([]string, 0, len(counts))
	for token := range counts {
		ranked = append(ranked, token)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Set returns every non-stop-word token in the text as a membership set.
func Set(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[token] {
			set[token] = true
		}
	}
	return set
}

// Missing returns the highest-ranked keywords of jobText that do not occur
// in resumeText (case-insensitive substring match), truncated to limit.
// The operation is directional: Missing(job, resume) differs from
// Missing(resume, job) in general.
func Missing(jobText, resumeText string, limit int) []string {
	resumeLower := strings.ToLower(resumeText)

	var missing []string
	for _, kw := range Extract(jobText, len(Set(jobText))) {
		if !strings.Contains(resumeLower, kw) {
			missing = append(missing, kw)
		}
		if len(missing) == limit {
			break
		}
	}
	return missing
}

// Overlap computes the fraction of jobText keywords that also occur in
// resumeText: |resume ∩ job| / |job|, or 0 when the job has no keywords.
func Overlap(resumeText, jobText string) float64 {
	jobSet := Set(jobText)
	if len(jobSet) == 0 {
		return 0
	}
	resumeSet := Set(resumeText)
	matched := 0
	for kw := range jobSet {
		if resumeSet[kw] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSet))
}
