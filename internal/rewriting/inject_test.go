package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const injectResume = `John Smith
john@example.com

Skills
Python, Django

Experience
Built web services.`

func TestInjectSkills_AppendsToExistingSection(t *testing.T) {
	got := InjectSkills(injectResume, []string{"Flask", "PostgreSQL"})

	assert.Contains(t, got, "Python, Django, Flask, PostgreSQL")
	assert.Contains(t, got, "Experience\nBuilt web services.")
}

func TestInjectSkills_SkipsAlreadyPresent(t *testing.T) {
	got := InjectSkills(injectResume, []string{"Python", "Flask"})

	assert.Equal(t, 1, strings.Count(got, "Python"))
	assert.Contains(t, got, "Flask")
}

func TestInjectSkills_Idempotent(t *testing.T) {
	once := InjectSkills(injectResume, []string{"Flask", "PostgreSQL"})
	twice := InjectSkills(once, []string{"Flask", "PostgreSQL"})
	assert.Equal(t, once, twice)
}

func TestInjectSkills_NoSkillsSection(t *testing.T) {
	resume := "John Smith\njohn@example.com\n\nExperience\nBuilt web services."
	got := InjectSkills(resume, []string{"Flask"})

	require.Contains(t, got, "Skills\nFlask")
	assert.True(t, strings.HasPrefix(got, "John Smith"))
}

func TestInjectSkills_HeaderWithColon(t *testing.T) {
	resume := "Skills:\nGo, Rust"
	got := InjectSkills(resume, []string{"Zig"})
	assert.Contains(t, got, "Go, Rust, Zig")
}

func TestInjectSkills_HeaderWithoutList(t *testing.T) {
	resume := "Summary\nEngineer.\n\nSkills\n"
	got := InjectSkills(resume, []string{"Go"})
	assert.Contains(t, got, "Skills\nGo")
}

func TestInjectSkills_EmptyInputs(t *testing.T) {
	assert.Equal(t, injectResume, InjectSkills(injectResume, nil))
	assert.Equal(t, "Skills\nGo", InjectSkills("", []string{"Go"}))
	assert.Equal(t, "", InjectSkills("", nil))
}

func TestInjectSkills_CaseInsensitivePresenceCheck(t *testing.T) {
	got := InjectSkills(injectResume, []string{"python", "PYTHON"})
	assert.Equal(t, injectResume, got)
}
