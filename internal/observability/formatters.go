// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchScore outputs the component scores and recommendation.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %5.1f%%\n", score.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %5.1f%%\n", score.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Keywords:    %5.1f%%\n", score.KeywordMatchScore))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f%%\n", score.ExperienceMatchScore))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f%%\n", score.EducationMatchScore))
	if score.Recommendation != "" {
		sb.WriteString("\n")
		sb.WriteString(score.Recommendation)
	}

	p.printBox("MATCH SCORE", sb.String())
}

// PrintResumeAnalysis outputs the extraction summary for a resume.
func (p *Printer) PrintResumeAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if analysis.ContactInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", analysis.ContactInfo.Email))
	}
	if analysis.ContactInfo.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", analysis.ContactInfo.Phone))
	}
	sb.WriteString(fmt.Sprintf("Words:    %d\n", analysis.WordCount))
	if analysis.YearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", analysis.YearsExperience))
	}
	sb.WriteString("\n")

	p.writeList(&sb, "Technical Skills", analysis.Skills.AllTechnical)
	p.writeList(&sb, "Top Keywords", analysis.Keywords)

	sb.WriteString(fmt.Sprintf("ATS Score: %.0f/100", analysis.ATS.Score))
	if len(analysis.ATS.Issues) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d issues)", len(analysis.ATS.Issues)))
	}

	p.printBox("RESUME ANALYSIS", sb.String())
}

// PrintJobAnalysis outputs the extraction summary for a job description.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:    %d\n", analysis.WordCount))
	if analysis.YearsRequired > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d required\n", analysis.YearsRequired))
	}
	sb.WriteString("\n")

	p.writeList(&sb, "Required Skills", analysis.SkillsRequired.AllTechnical)
	p.writeList(&sb, "Top Keywords", analysis.Keywords)

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs the full optimization report.
func (p *Printer) PrintOptimization(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	p.PrintMatchScore(&result.MatchScore)

	var sb strings.Builder
	p.writeList(&sb, "Missing Skills", result.MissingSkills)
	p.writeList(&sb, "Matching Skills", result.MatchingSkills)
	p.writeList(&sb, "Suggested Keywords", result.SuggestedKeywords)

	if len(result.Improvements) > 0 {
		sb.WriteString("Improvements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			imp := result.Improvements[i]
			suggestion := imp.Suggestion
			if len(suggestion) > 45 {
				suggestion = suggestion[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", imp.Priority, suggestion))
		}
		if len(result.Improvements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Improvements)-maxItemsToShow))
		}
	}

	p.printBox("OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintATSReport(&result.ATS)

	if result.AISuggestions != "" {
		label := "AI SUGGESTIONS"
		if !result.AIPowered {
			label = "SUGGESTIONS (local fallback)"
		}
		p.printBox(label, wrapText(result.AISuggestions, boxWidth-4))
	}
}

// PrintKeywords outputs the keyword overlap between the two documents.
func (p *Printer) PrintKeywords(resumeKeywords, jobKeywords, missing []string, overlap float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overlap:  %.0f%%\n\n", overlap*100))

	p.writeList(&sb, "Resume Keywords", resumeKeywords)
	p.writeList(&sb, "Job Keywords", jobKeywords)
	p.writeList(&sb, "Missing From Resume", missing)

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSReport outputs the ATS compatibility report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	if len(report.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ ATS SCORE %.0f/100, NO ISSUES", report.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.0f/100\n\n", report.Score))
	for i, issue := range report.Issues {
		if len(issue) > 50 {
			issue = issue[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
		if i < len(report.Recommendations) {
			rec := report.Recommendations[i]
			if len(rec) > 48 {
				rec = rec[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", rec))
		}
		if i < len(report.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// writeList appends a capped bullet list section, skipping empty lists.
func (p *Printer) writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// wrapText breaks text into lines no longer than width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
