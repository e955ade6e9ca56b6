// Package rewriting performs targeted text surgery on resumes. It never
// reorders or rewrites existing content, it only adds what is missing.
package rewriting

import (
	"regexp"
	"strings"
)

// skillsHeaderRe matches a skills section header on its own line, with
// or without a trailing colon.
var skillsHeaderRe = regexp.MustCompile(`(?im)^\s*(?:technical\s+)?skills\s*:?\s*$`)

// InjectSkills appends the missing skills to the resume's skills
// section, or adds a new Skills section when none exists. Skills the
// resume already mentions (case-insensitive) are skipped, so the
// operation is idempotent.
func InjectSkills(resume string, missing []string) string {
	toAdd := filterPresent(resume, missing)
	if len(toAdd) == 0 {
		return resume
	}
	addition := strings.Join(toAdd, ", ")

	loc := skillsHeaderRe.FindStringIndex(resume)
	if loc == nil {
		resume = strings.TrimRight(resume, "\n")
		if resume == "" {
			return "Skills\n" + addition
		}
		return resume + "\n\nSkills\n" + addition
	}

	// Insert at the end of the line following the header, so the new
	// skills join the existing list block.
	insertAt := endOfNextLine(resume, loc[1])
	suffix := resume[insertAt:]
	if strings.TrimSpace(resume[loc[1]:insertAt]) == "" {
		// Header with no list under it yet.
		return strings.TrimRight(resume[:insertAt], "\n") + "\n" + addition + suffix
	}
	return resume[:insertAt] + ", " + addition + suffix
}

// filterPresent drops skills already mentioned anywhere in the resume.
func filterPresent(resume string, skills []string) []string {
	lower := strings.ToLower(resume)
	var out []string
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if !strings.Contains(lower, strings.ToLower(skill)) {
			out = append(out, skill)
		}
	}
	return out
}

// endOfNextLine returns the index just before the newline terminating
// the line after position pos, or len(s) when the text ends first.
func endOfNextLine(s string, pos int) int {
	rest := s[pos:]
	idx := strings.Index(rest, "\n")
	if idx < 0 {
		return len(s)
	}
	next := rest[idx+1:]
	end := strings.Index(next, "\n")
	if end < 0 {
		return len(s)
	}
	return pos + idx + 1 + end
}
