package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FrequencyOrdering(t *testing.T) {
	text := "kubernetes kubernetes kubernetes docker docker python"
	assert.Equal(t, []string{"kubernetes", "docker", "python"}, Extract(text, 10))
}

func TestExtract_TieBrokenByFirstAppearance(t *testing.T) {
	text := "zephyr alpha zephyr alpha beta"
	// zephyr and alpha tie at 2; zephyr appeared first.
	assert.Equal(t, []string{"zephyr", "alpha", "beta"}, Extract(text, 10))
}

func TestExtract_Deterministic(t *testing.T) {
	text := "build scalable services build reliable services with python and design systems"
	first := Extract(text, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text, 5))
	}
}

func TestExtract_FiltersStopWordsAndShortTokens(t *testing.T) {
	got := Extract("the team and the company will go to AWS Inc for the cloud", 20)
	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "and")
	assert.NotContains(t, got, "inc")
	assert.NotContains(t, got, "go") // under three characters
	assert.Contains(t, got, "cloud")
	assert.Contains(t, got, "team")
}

func TestExtract_TopNTruncation(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	assert.Len(t, Extract(text, 3), 3)
	assert.Len(t, Extract(text, 0), 5) // defaults to DefaultTopN, more than available
}

func TestMissing_DirectionalAndCapped(t *testing.T) {
	job := "kubernetes terraform ansible prometheus grafana monitoring"
	resume := "kubernetes experience with monitoring dashboards"

	missing := Missing(job, resume, 3)
	assert.Len(t, missing, 3)
	assert.NotContains(t, missing, "kubernetes")
	assert.NotContains(t, missing, "monitoring")

	// Reversed direction yields a different answer.
	reversed := Missing(resume, job, 10)
	assert.NotEqual(t, missing, reversed)
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 1.0, Overlap("python django rest", "python django rest"))
	assert.Equal(t, 0.0, Overlap("python", "haskell erlang"))
	assert.Equal(t, 0.0, Overlap("python", ""))
	assert.InDelta(t, 0.5, Overlap("python flask", "python fastapi"), 0.001)
}

func TestSet_Empty(t *testing.T) {
	assert.Empty(t, Set(""))
}
