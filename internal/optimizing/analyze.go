package optimizing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeResume runs the full signal extraction for a resume, including
// the ATS compatibility check on the raw text.
func AnalyzeResume(content string) types.ResumeAnalysis {
	return types.ResumeAnalysis{
		ContactInfo:     extraction.Contact(content),
		Skills:          extraction.Skills(content),
		YearsExperience: extraction.MaxYears(extraction.ExperienceYears(content)),
		Keywords:        keywords.Extract(content, keywords.DefaultTopN),
		WordCount:       len(strings.Fields(content)),
		ATS:             ATSCheck(content),
	}
}

// AnalyzeJob runs the signal extraction for a job description.
func AnalyzeJob(content string) types.JobAnalysis {
	return types.JobAnalysis{
		SkillsRequired: extraction.Skills(content),
		YearsRequired:  extraction.MaxYears(extraction.ExperienceYears(content)),
		Keywords:       keywords.Extract(content, keywords.DefaultTopN),
		WordCount:      len(strings.Fields(content)),
	}
}
