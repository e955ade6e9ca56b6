// Package matching aggregates per-dimension signals from a resume and a
// job description into a single weighted match score.
package matching

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Dimension weights. Skills dominate, keyword similarity second,
// experience and education round out the score.
const (
	weightSkill      = 0.4
	weightKeyword    = 0.3
	weightExperience = 0.2
	weightEducation  = 0.1
)

// neutralExperience is used when either document states no year figure.
const neutralExperience = 0.5

// educationKeywords count toward the education dimension by presence,
// not occurrences.
var educationKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college"}

// Scorer computes match scores. The similarity service is optional;
// without one keyword similarity is scored lexically.
type Scorer struct {
	sim *similarity.Service
}

// NewScorer builds a Scorer. sim may be nil.
func NewScorer(sim *similarity.Service) *Scorer {
	return &Scorer{sim: sim}
}

// docSignals holds everything Score needs from one document.
type docSignals struct {
	normalized string
	technical  map[string]bool
	years      int
	education  int
}

func analyzeDoc(text string) docSignals {
	lower := strings.ToLower(text)
	education := 0
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			education++
		}
	}
	return docSignals{
		normalized: parsing.Normalize(text),
		technical:  extraction.Skills(text).TechnicalSet(),
		years:      extraction.MaxYears(extraction.ExperienceYears(text)),
		education:  education,
	}
}

// Score analyzes both documents and combines skill, keyword, experience
// and education signals into a 0-100 MatchScore. Every sub-score lands
// in [0, 1] before weighting, so the overall score is bounded by
// construction.
func (s *Scorer) Score(ctx context.Context, resume, job string) types.MatchScore {
	var rs, js docSignals
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs = analyzeDoc(resume)
		return nil
	})
	g.Go(func() error {
		js = analyzeDoc(job)
		return nil
	})
	_ = g.Wait()

	skillMatch := skillOverlap(rs.technical, js.technical)
	keywordMatch := s.keywordSimilarity(ctx, rs.normalized, js.normalized)
	experienceMatch := experienceRatio(rs.years, js.years)
	educationMatch := educationRatio(rs.education, js.education)

	overall := skillMatch*weightSkill +
		keywordMatch*weightKeyword +
		experienceMatch*weightExperience +
		educationMatch*weightEducation

	return types.MatchScore{
		OverallScore:         toPercent(overall),
		SkillMatchScore:      toPercent(skillMatch),
		KeywordMatchScore:    toPercent(keywordMatch),
		ExperienceMatchScore: toPercent(experienceMatch),
		EducationMatchScore:  toPercent(educationMatch),
		Recommendation:       Recommendation(overall),
	}
}

// skillOverlap is the fraction of the job's technical skills present in
// the resume. A job that names no technical skills scores 0.
func skillOverlap(resume, job map[string]bool) float64 {
	if len(job) == 0 {
		return 0
	}
	matched := 0
	for skill := range job {
		if resume[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(job))
}

// keywordSimilarity prefers the embedding-based score and falls back to
// TF-IDF when no embedder is configured or the semantic call fails.
func (s *Scorer) keywordSimilarity(ctx context.Context, resume, job string) float64 {
	if s.sim != nil && s.sim.Available(ctx) {
		if v := s.sim.Semantic(ctx, resume, job); v > 0 {
			return v
		}
	}
	return similarity.TFIDF(resume, job)
}

// experienceRatio caps at 1.0 once the resume meets the requirement and
// stays neutral when either side states no year figure.
func experienceRatio(resumeYears, jobYears int) float64 {
	if resumeYears == 0 || jobYears == 0 {
		return neutralExperience
	}
	if resumeYears >= jobYears {
		return 1.0
	}
	return float64(resumeYears) / float64(jobYears)
}

// educationRatio compares education keyword presence counts. A job with
// no education language imposes no requirement.
func educationRatio(resumeCount, jobCount int) float64 {
	if jobCount == 0 {
		return 1.0
	}
	return math.Min(float64(resumeCount)/float64(jobCount), 1.0)
}

// Recommendation maps an overall score on the 0-1 scale to a short
// human-readable verdict.
func Recommendation(overall float64) string {
	switch {
	case overall >= 0.8:
		return "Excellent match - minor tweaks recommended"
	case overall >= 0.6:
		return "Good match - add missing skills and keywords"
	case overall >= 0.4:
		return "Fair match - significant improvements needed"
	default:
		return "Poor match - major changes required"
	}
}

// toPercent scales a 0-1 fraction to 0-100 with one decimal place.
func toPercent(v float64) float64 {
	return math.Round(v*1000) / 10
}
