package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// US phone formats, tried in order: general (optional +1, optional
	// parens), dotted, dashed.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`),
		regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
	}

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/([\w-]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([\w-]+)`)

	digitRe = regexp.MustCompile(`\d`)
)

// nameExclusions are tokens that disqualify a line from being the
// candidate's name.
var nameExclusions = []string{"engineer", "developer", "@", "phone", "email", "resume"}

// Contact extracts contact fields from resume text. Every field is
// best-effort: absent fields stay empty and no input ever produces an
// error.
func Contact(text string) types.ContactInfo {
	info := types.ContactInfo{}

	if email := emailRe.FindString(text); email != "" {
		info.Email = email
	}
	info.Phone = extractPhone(text)

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		info.LinkedIn = "https://linkedin.com/in/" + strings.ToLower(m[1])
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		info.GitHub = "https://github.com/" + strings.ToLower(m[1])
	}

	info.Name = extractName(text)
	return info
}

// extractPhone tries each phone pattern in order and normalizes the first
// match with at least 10 digits to "(XXX) XXX-XXXX".
func extractPhone(text string) string {
	for _, re := range phoneRes {
		match := re.FindString(text)
		if match == "" {
			continue
		}
		digits := strings.Join(digitRe.FindAllString(match, -1), "")
		if len(digits) < 10 {
			continue
		}
		last10 := digits[len(digits)-10:]
		return fmt.Sprintf("(%s) %s-%s", last10[:3], last10[3:6], last10[6:])
	}
	return ""
}

// extractName takes the first of the top three non-empty lines that looks
// like a person's name rather than a title or contact row.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == 3 {
			break
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		excluded := false
		for _, token := range nameExclusions {
			if strings.Contains(lower, token) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if words := strings.Fields(line); len(words) <= 4 && len(line) > 5 {
			return line
		}
	}
	return ""
}
