// Package optimizing turns a match analysis into actionable resume
// improvements: missing skills, suggested keywords, threshold-driven
// suggestions, ATS compatibility, and optional AI-generated advice.
package optimizing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// suggestedKeywordCap bounds the missing-keyword list in the result.
const suggestedKeywordCap = 15

// Optimizer produces optimization reports. The LLM client is optional;
// without one the AI suggestions fall back to deterministic local text.
type Optimizer struct {
	scorer *matching.Scorer
	client llm.Client
}

// NewOptimizer builds an Optimizer. client may be nil.
func NewOptimizer(scorer *matching.Scorer, client llm.Client) *Optimizer {
	return &Optimizer{scorer: scorer, client: client}
}

// Optimize analyzes the resume against the job description and returns
// the full optimization report. It never fails: degraded collaborators
// reduce to local fallbacks.
func (o *Optimizer) Optimize(ctx context.Context, resume, job string) types.OptimizationResult {
	score := o.scorer.Score(ctx, resume, job)

	resumeSkills := extraction.Skills(resume)
	jobSkills := extraction.Skills(job)
	missingSkills := jobSkills.DiffTechnical(resumeSkills)
	matchingSkills := jobSkills.IntersectTechnical(resumeSkills)

	result := types.OptimizationResult{
		MatchScore:        score,
		MissingSkills:     missingSkills,
		MatchingSkills:    matchingSkills,
		SuggestedKeywords: keywords.Missing(job, resume, suggestedKeywordCap),
		Improvements:      improvements(score, missingSkills),
		ATS:               ATSCheck(resume),
	}

	o.addAISuggestions(ctx, &result, resume, job)
	return result
}

// addAISuggestions fills the AI fields, degrading to fallback text when
// the collaborator is absent or its reply fails validation.
func (o *Optimizer) addAISuggestions(ctx context.Context, result *types.OptimizationResult, resume, job string) {
	if o.client == nil {
		result.AISuggestions = strings.Join(llm.FallbackSuggestions().Suggestions, "; ")
		return
	}

	suggestions, err := llm.Suggest(ctx, o.client, resume, job)
	if err != nil {
		slog.Warn("AI suggestions unavailable, using fallback", "error", err)
		result.AISuggestions = strings.Join(llm.FallbackSuggestions().Suggestions, "; ")
		return
	}

	result.AISuggestions = strings.Join(suggestions.Suggestions, "; ")
	result.AIModel = o.client.GetModel(llm.TierStandard)
	result.AIPowered = true
}

// improvements applies the threshold rules to the sub-scores. Order is
// fixed: skills, keywords, experience, the always-on ATS entry, then
// the overall verdict.
func improvements(score types.MatchScore, missingSkills []string) []types.Improvement {
	var out []types.Improvement

	if score.SkillMatchScore < 70 {
		top := missingSkills
		if len(top) > 5 {
			top = top[:5]
		}
		suggestion := "Add missing skills to your resume"
		if len(top) > 0 {
			suggestion = "Add missing skills: " + strings.Join(top, ", ")
		}
		out = append(out, types.Improvement{
			Category:    "Skills",
			Suggestion:  suggestion,
			Priority:    types.PriorityHigh,
			ImpactScore: 8.5,
		})
	}

	if score.KeywordMatchScore < 60 {
		out = append(out, types.Improvement{
			Category:    "Keywords",
			Suggestion:  "Incorporate more job-specific terminology throughout your resume",
			Priority:    types.PriorityHigh,
			ImpactScore: 7.0,
		})
	}

	if score.ExperienceMatchScore < 80 {
		out = append(out, types.Improvement{
			Category:    "Experience",
			Suggestion:  "Align your experience descriptions with job requirements",
			Priority:    types.PriorityMedium,
			ImpactScore: 6.5,
		})
	}

	out = append(out, types.Improvement{
		Category:    "ATS Optimization",
		Suggestion:  "Use standard section headers and avoid complex formatting",
		Priority:    types.PriorityMedium,
		ImpactScore: 5.0,
	})

	if score.OverallScore < 50 {
		out = append(out, types.Improvement{
			Category:    "Overall",
			Suggestion:  "Consider major revisions to better match this position",
			Priority:    types.PriorityHigh,
			ImpactScore: 9.0,
		})
	}

	return out
}
