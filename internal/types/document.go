// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// Document pairs the raw text of a resume or job posting with its
// normalized form. Constructed once per request and never mutated.
type Document struct {
	RawText        string `json:"raw_text"`
	NormalizedText string `json:"normalized_text"`
}

// Priority levels for improvement suggestions.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
