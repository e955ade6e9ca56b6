package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/similarity"
)

const matchingResume = `John Smith
john.smith@example.com
Senior Python developer with 5 years of experience.
Skills: Python, Django, PostgreSQL, Docker, AWS`

const matchingJob = `Senior Backend Engineer
Requirements: 5+ years of experience with Python and Django.
Must know PostgreSQL, Docker, AWS.`

func TestScoreIdenticalTexts(t *testing.T) {
	text := "Senior developer. Skills: Python, Django, PostgreSQL, Docker, AWS."
	score := NewScorer(nil).Score(context.Background(), text, text)

	assert.Equal(t, 100.0, score.SkillMatchScore)
	assert.Equal(t, 100.0, score.KeywordMatchScore)
	assert.Equal(t, 50.0, score.ExperienceMatchScore)
	assert.Equal(t, 100.0, score.EducationMatchScore)
	assert.GreaterOrEqual(t, score.OverallScore, 90.0)
	assert.Equal(t, "Excellent match - minor tweaks recommended", score.Recommendation)
}

func TestScoreDisjointTexts(t *testing.T) {
	resume := "Oil painting portfolio. Gallery exhibitions and sculpture commissions."
	score := NewScorer(nil).Score(context.Background(), resume, matchingJob)

	assert.Equal(t, 0.0, score.SkillMatchScore)
	assert.Less(t, score.OverallScore, 40.0)
	assert.Equal(t, "Poor match - major changes required", score.Recommendation)
}

func TestScoreStrongCandidate(t *testing.T) {
	score := NewScorer(nil).Score(context.Background(), matchingResume, matchingJob)

	assert.Equal(t, 100.0, score.SkillMatchScore)
	assert.Equal(t, 100.0, score.ExperienceMatchScore)
	assert.GreaterOrEqual(t, score.OverallScore, 60.0)
}

func TestScoreBounds(t *testing.T) {
	cases := []struct{ resume, job string }{
		{"", ""},
		{matchingResume, ""},
		{"", matchingJob},
		{matchingResume, matchingJob},
	}
	scorer := NewScorer(nil)
	for _, tc := range cases {
		score := scorer.Score(context.Background(), tc.resume, tc.job)
		for _, v := range []float64{
			score.OverallScore, score.SkillMatchScore, score.KeywordMatchScore,
			score.ExperienceMatchScore, score.EducationMatchScore,
		} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
		assert.NotEmpty(t, score.Recommendation)
	}
}

func TestScoreJobWithoutSkills(t *testing.T) {
	job := "Looking for a motivated person to join our growing team."
	score := NewScorer(nil).Score(context.Background(), matchingResume, job)
	assert.Equal(t, 0.0, score.SkillMatchScore)
}

func TestScoreUsesSemanticWhenAvailable(t *testing.T) {
	svc := similarity.NewService(func(context.Context) (similarity.Embedder, error) {
		return constantEmbedder{}, nil
	}, 0)
	score := NewScorer(svc).Score(context.Background(), "golang services", "java services")
	assert.Equal(t, 100.0, score.KeywordMatchScore)
}

func TestExperienceRatio(t *testing.T) {
	assert.Equal(t, 0.5, experienceRatio(0, 5))
	assert.Equal(t, 0.5, experienceRatio(5, 0))
	assert.Equal(t, 0.5, experienceRatio(3, 6))
	assert.Equal(t, 1.0, experienceRatio(6, 6))
	assert.Equal(t, 1.0, experienceRatio(10, 6))
}

func TestEducationRatio(t *testing.T) {
	assert.Equal(t, 1.0, educationRatio(0, 0))
	assert.Equal(t, 1.0, educationRatio(3, 2))
	assert.Equal(t, 0.5, educationRatio(1, 2))
	assert.Equal(t, 0.0, educationRatio(0, 2))
}

func TestRecommendationTiers(t *testing.T) {
	assert.Equal(t, "Excellent match - minor tweaks recommended", Recommendation(0.8))
	assert.Equal(t, "Good match - add missing skills and keywords", Recommendation(0.6))
	assert.Equal(t, "Fair match - significant improvements needed", Recommendation(0.4))
	assert.Equal(t, "Poor match - major changes required", Recommendation(0.39))
}

func TestAnalyzeDocSignals(t *testing.T) {
	sig := analyzeDoc("Bachelor degree holder with 4 years of experience in Python.")
	require.True(t, sig.technical["Python"])
	assert.Equal(t, 4, sig.years)
	assert.Equal(t, 2, sig.education)
}

// constantEmbedder returns the same vector for every input.
type constantEmbedder struct{}

func (constantEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{1, 2, 3}, nil
}

func (constantEmbedder) Close() error { return nil }
