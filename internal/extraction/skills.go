// Package extraction scans normalized resume and job-posting text for
// skills, contact fields, and experience signals using curated dictionaries
// and regex patterns. It is heuristic by design; no trained model is
// involved.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Category dictionaries. Labels are the canonical forms returned in a
// SkillSet; matching is case-insensitive whole-word/phrase.
var (
	programmingLanguages = []string{
		"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "C",
		"Ruby", "Go", "Rust", "Swift", "Kotlin", "PHP", "Scala", "Perl",
		"HTML", "CSS", "SQL", "NoSQL", "GraphQL", "Shell",
	}
	frameworksLibraries = []string{
		"React", "Angular", "Vue", "Django", "Flask", "FastAPI", "Spring",
		"Express", "Node.js", "Rails", "Laravel", "Next.js", "Bootstrap",
		"Tailwind", "jQuery", "Svelte", "pandas", "NumPy", "TensorFlow",
		"PyTorch",
	}
	databases = []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"DynamoDB", "Cassandra", "Elasticsearch", "Neo4j", "MariaDB",
		"CouchDB", "InfluxDB",
	}
	cloudPlatforms = []string{
		"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes",
		"Terraform", "CloudFormation", "Heroku", "DigitalOcean", "Vercel",
		"Netlify",
	}
	tools = []string{
		"Git", "GitHub", "GitLab", "Jenkins", "CI/CD", "JIRA", "Postman",
		"Swagger", "VS Code", "IntelliJ", "Figma", "Linux",
	}
	softSkills = []string{
		"Leadership", "Communication", "Teamwork", "Problem Solving",
		"Collaboration", "Mentoring",
	}
)

// skillPattern pairs a canonical label with its compiled matcher.
type skillPattern struct {
	label string
	re    *regexp.Regexp
}

var categoryPatterns = map[string][]skillPattern{
	"programming_languages": compilePatterns(programmingLanguages),
	"frameworks_libraries":  compilePatterns(frameworksLibraries),
	"databases":             compilePatterns(databases),
	"cloud_platforms":       compilePatterns(cloudPlatforms),
	"tools":                 compilePatterns(tools),
	"soft_skills":           compilePatterns(softSkills),
}

func compilePatterns(labels []string) []skillPattern {
	patterns := make([]skillPattern, 0, len(labels))
	for _, label := range labels {
		patterns = append(patterns, skillPattern{
			label: label,
			re:    regexp.MustCompile(termPattern(label)),
		})
	}
	return patterns
}

// termPattern builds a case-insensitive whole-word pattern for a skill
// term. Punctuation inside terms like "C++" or "Node.js" is escaped, not
// treated as regex metacharacters; \b anchors are only placed against word
// characters, where they are well defined.
func termPattern(label string) string {
	escaped := regexp.QuoteMeta(strings.ToLower(label))

	prefix := `\b`
	if !isWordChar(rune(label[0])) {
		prefix = `(?:^|[^\w])`
	}
	suffix := `\b`
	if !isWordChar(rune(label[len(label)-1])) {
		suffix = ""
	}

	return `(?i)` + prefix + escaped + suffix
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Skills matches the category dictionaries against the text and returns the
// categorized skill set. Matching is case-insensitive and bounded: "Java"
// does not match inside "JavaScript". Results are deduplicated and sorted;
// an empty input yields empty categories, never an error.
func Skills(text string) types.SkillSet {
	matched := make(map[string][]string, len(categoryPatterns))
	for category, patterns := range categoryPatterns {
		var found []string
		for _, p := range patterns {
			if p.re.MatchString(text) {
				found = append(found, p.label)
			}
		}
		sort.Strings(found)
		matched[category] = found
	}

	set := types.SkillSet{
		ProgrammingLanguages: matched["programming_languages"],
		FrameworksLibraries:  matched["frameworks_libraries"],
		Databases:            matched["databases"],
		CloudPlatforms:       matched["cloud_platforms"],
		Tools:                matched["tools"],
		SoftSkills:           matched["soft_skills"],
	}

	technical := make([]string, 0,
		len(set.ProgrammingLanguages)+len(set.FrameworksLibraries)+
			len(set.Databases)+len(set.CloudPlatforms)+len(set.Tools))
	for _, category := range [][]string{
		set.ProgrammingLanguages, set.FrameworksLibraries, set.Databases,
		set.CloudPlatforms, set.Tools,
	} {
		technical = append(technical, category...)
	}
	sort.Strings(technical)
	set.AllTechnical = technical

	return set
}
