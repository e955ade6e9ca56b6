package extraction

import (
	"regexp"
	"sort"
	"strconv"
)

// Patterns for "years of experience" mentions. Each captures the numeric
// part only.
var experienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:in|with)\b`),
	regexp.MustCompile(`(?i)over\s+(\d+)\s+years?`),
}

// ExperienceYears collects every distinct years-of-experience figure
// mentioned in the text, as numeric strings sorted ascending. Callers that
// need a single figure take the maximum explicitly via MaxYears.
func ExperienceYears(text string) []string {
	seen := make(map[string]bool)
	var years []string
	for _, re := range experienceRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				years = append(years, m[1])
			}
		}
	}
	sort.Slice(years, func(i, j int) bool {
		a, _ := strconv.Atoi(years[i])
		b, _ := strconv.Atoi(years[j])
		return a < b
	})
	return years
}

// MaxYears returns the largest years figure in the list, or 0 if the list
// is empty or holds no parseable numbers.
func MaxYears(years []string) int {
	max := 0
	for _, y := range years {
		if n, err := strconv.Atoi(y); err == nil && n > max {
			max = n
		}
	}
	return max
}
