package types

// ResumeAnalysis is the full signal extraction for a single resume.
type ResumeAnalysis struct {
	ContactInfo     ContactInfo `json:"contact_info"`
	Skills          SkillSet    `json:"skills"`
	YearsExperience int         `json:"years_experience,omitempty"`
	Keywords        []string    `json:"keywords,omitempty"`
	WordCount       int         `json:"word_count"`
	ATS             ATSReport   `json:"ats_score"`
}

// JobAnalysis is the signal extraction for a job description.
type JobAnalysis struct {
	SkillsRequired SkillSet `json:"skills_required"`
	YearsRequired  int      `json:"years_experience,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	WordCount      int      `json:"word_count"`
}
