package optimizing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// atsSectionHeaders are the section names automated screeners key on.
var atsSectionHeaders = []string{"experience", "education", "skills", "summary", "objective"}

// atsProblematicGlyphs commonly garble during ATS text extraction.
var atsProblematicGlyphs = []string{"•", "→", "★", "◆", "▪", "✓", "✗", "←", "↑", "↓"}

// ATSCheck scores the resume's compatibility with applicant-tracking
// systems. It runs on the raw text: the line-structure checks are
// meaningless after normalization.
func ATSCheck(raw string) types.ATSReport {
	score := 100.0
	var issues, recommendations []string

	lower := strings.ToLower(raw)
	found := 0
	for _, header := range atsSectionHeaders {
		if strings.Contains(lower, header) {
			found++
		}
	}
	if found < 3 {
		score -= 20
		issues = append(issues, "Missing standard section headers")
		recommendations = append(recommendations, "Add clear section headers: Experience, Education, Skills")
	}

	contact := extraction.Contact(raw)
	if contact.Email == "" {
		score -= 15
		issues = append(issues, "No email address found")
		recommendations = append(recommendations, "Include your email address at the top")
	}
	if contact.Phone == "" {
		score -= 10
		issues = append(issues, "No phone number found")
		recommendations = append(recommendations, "Add a phone number in standard format")
	}

	for _, glyph := range atsProblematicGlyphs {
		if strings.Contains(raw, glyph) {
			score -= 10
			issues = append(issues, "Contains special characters that may confuse ATS")
			recommendations = append(recommendations, "Replace bullet points with standard dashes (-) or asterisks (*)")
			break
		}
	}

	if parsing.CountLines(raw) < 5 {
		score -= 15
		issues = append(issues, "Document appears to lack proper line breaks")
		recommendations = append(recommendations, "Use proper paragraph formatting with clear sections")
	}

	if score < 0 {
		score = 0
	}
	return types.ATSReport{
		Score:           score,
		Issues:          issues,
		Recommendations: recommendations,
	}
}
