// Package llm - suggest.go builds the resume optimization prompt and
// parses the structured reply.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// Input bounds for the optimization prompt. The resume gets more room
// than the job description.
const (
	maxResumeChars = 1500
	maxJobChars    = 1000
)

// suggestTimeout bounds a single suggestion round trip.
const suggestTimeout = 30 * time.Second

// Suggestions is the structured reply from the collaborator.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest asks the collaborator for targeted resume improvements
// against the job description. The reply must be a JSON object with a
// "suggestions" array; anything else is an error and callers should
// fall back to FallbackSuggestions.
func Suggest(ctx context.Context, client Client, resume, job string) (*Suggestions, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	prompt := buildSuggestPrompt(
		parsing.Truncate(resume, maxResumeChars),
		parsing.Truncate(job, maxJobChars),
	)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("suggestion generation failed: %w", err)
	}

	if err := schemas.ValidateSuggestions(raw); err != nil {
		return nil, fmt.Errorf("suggestion reply rejected: %w", err)
	}

	var out Suggestions
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion reply: %w", err)
	}
	return &out, nil
}

func buildSuggestPrompt(resume, job string) string {
	template := prompts.MustGet("suggestions.json", "optimize")
	return prompts.Format(template, map[string]string{
		"Resume": resume,
		"Job":    job,
	})
}

// FallbackSuggestions returns deterministic local advice for when the
// collaborator is unavailable or its reply fails validation.
func FallbackSuggestions() *Suggestions {
	return &Suggestions{Suggestions: []string{
		"Add relevant keywords from the job description",
		"Quantify achievements with metrics",
		"Use standard section headers for ATS compatibility",
		"Highlight matching skills prominently",
		"Tailor experience descriptions to the job requirements",
	}}
}
