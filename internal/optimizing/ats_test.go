package optimizing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanResume = `John Smith
john.smith@example.com
(555) 123-4567

Summary
Experienced backend engineer.

Experience
Built APIs in Go and Python.

Education
BS Computer Science.

Skills
Go, Python, PostgreSQL.`

func TestATSCheck_CleanResume(t *testing.T) {
	report := ATSCheck(cleanResume)
	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
}

func TestATSCheck_MissingContact(t *testing.T) {
	resume := `Summary
Experienced engineer.

Experience
Built things.

Education
BS.

Skills
Go.`
	report := ATSCheck(resume)

	assert.Equal(t, 75.0, report.Score)
	assert.Contains(t, report.Issues, "No email address found")
	assert.Contains(t, report.Issues, "No phone number found")
	assert.Contains(t, report.Recommendations, "Include your email address at the top")
	assert.Contains(t, report.Recommendations, "Add a phone number in standard format")
}

func TestATSCheck_FewSectionHeaders(t *testing.T) {
	resume := `jane@example.com
(555) 123-4567
I write software
and fix bugs
every day`
	report := ATSCheck(resume)

	assert.Equal(t, 80.0, report.Score)
	assert.Contains(t, report.Issues, "Missing standard section headers")
}

func TestATSCheck_ProblematicGlyphs(t *testing.T) {
	report := ATSCheck(cleanResume + "\n• Shipped features → production ★")
	assert.Equal(t, 90.0, report.Score)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "special characters")
}

func TestATSCheck_LacksLineBreaks(t *testing.T) {
	resume := "jane@example.com (555) 123-4567 summary experience education skills all on one line"
	report := ATSCheck(resume)

	assert.Equal(t, 85.0, report.Score)
	assert.Contains(t, report.Issues, "Document appears to lack proper line breaks")
}

func TestATSCheck_ScoreFloorsAtZero(t *testing.T) {
	report := ATSCheck("• nothing here")
	assert.GreaterOrEqual(t, report.Score, 0.0)
	assert.Equal(t, len(report.Issues), len(report.Recommendations))
}

func TestATSCheck_OneRecommendationPerIssue(t *testing.T) {
	for _, text := range []string{"", cleanResume, "• short", strings.Repeat("word ", 100)} {
		report := ATSCheck(text)
		assert.Equal(t, len(report.Issues), len(report.Recommendations))
	}
}
