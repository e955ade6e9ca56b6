// Package parsing provides text normalization for extracted resume and
// job-posting content.
package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxHeaderLength is the longest line still considered a section header.
const maxHeaderLength = 50

var (
	whitespaceRe      = regexp.MustCompile(`\s+`)
	sentenceSpacingRe = regexp.MustCompile(`([.!?])\s*([A-Z])`)
	punctSpacingRe    = regexp.MustCompile(`\s+([.,:;!?])`)
)

// Normalize cleans raw text extracted from a document for downstream
// parsing. Section headers (short lines that are all-uppercase or contain a
// colon) are re-isolated with surrounding line breaks so section-based
// parsing survives the whitespace collapse; everything else is joined into
// flowing text with normalized spacing around punctuation.
// Returns the empty string for empty input and never errors.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	processed := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			processed = append(processed, "\n"+line+"\n")
		} else {
			processed = append(processed, line)
		}
	}

	text := strings.Join(processed, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = sentenceSpacingRe.ReplaceAllString(text, "$1 $2")
	text = punctSpacingRe.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}

// isSectionHeader reports whether a trimmed line looks like a resume
// section header: short, and either all-uppercase or containing a colon.
func isSectionHeader(line string) bool {
	if len(line) >= maxHeaderLength {
		return false
	}
	if strings.Contains(line, ":") {
		return true
	}
	return isUpper(line)
}

// isUpper reports whether the line contains at least one letter and no
// lowercase letters.
func isUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// CountLines returns the number of lines in the raw text. Used by the ATS
// scorer to detect documents that lost their structure during extraction.
func CountLines(raw string) int {
	if raw == "" {
		return 0
	}
	return strings.Count(raw, "\n") + 1
}

// Truncate returns at most n bytes of s, cutting at a rune boundary. Used
// to bound text handed to the embedding model and the remote LLM.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
