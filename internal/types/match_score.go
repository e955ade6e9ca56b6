package types

// MatchScore decomposes the resume-to-job fit into weighted components.
// Every score is a percentage in [0,100] rounded to one decimal place.
// OverallScore is the documented weighted sum of the other four
// (0.4 skill + 0.3 keyword + 0.2 experience + 0.1 education), modulo
// rounding.
type MatchScore struct {
	OverallScore         float64 `json:"overall_score"`
	SkillMatchScore      float64 `json:"skill_match_score"`
	KeywordMatchScore    float64 `json:"keyword_match_score"`
	ExperienceMatchScore float64 `json:"experience_match_score"`
	EducationMatchScore  float64 `json:"education_match_score"`
	Recommendation       string  `json:"recommendation"`
}
