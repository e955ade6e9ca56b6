package types

// Improvement is a single actionable suggestion produced by the optimizer.
type Improvement struct {
	Category    string  `json:"category"`
	Suggestion  string  `json:"suggestion"`
	Priority    string  `json:"priority"`
	ImpactScore float64 `json:"impact_score"`
}

// ATSReport scores how well a resume survives automated applicant-tracking
// screening. Score starts at 100 and loses points per detected issue,
// floored at 0; each deduction contributes one recommendation.
type ATSReport struct {
	Score           float64  `json:"score"`
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// OptimizationResult aggregates everything the optimizer produces for one
// resume/job pair. AISuggestions carries the opaque remote-model response
// when available, or deterministic local fallback text.
type OptimizationResult struct {
	MatchScore        MatchScore    `json:"match_score"`
	MissingSkills     []string      `json:"missing_skills"`
	MatchingSkills    []string      `json:"matching_skills"`
	SuggestedKeywords []string      `json:"suggested_keywords"`
	Improvements      []Improvement `json:"improvements"`
	ATS               ATSReport     `json:"ats_analysis"`
	AISuggestions     string        `json:"ai_suggestions,omitempty"`
	AIModel           string        `json:"ai_model,omitempty"`
	AIPowered         bool          `json:"ai_powered"`
}
