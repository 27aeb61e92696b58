package scoring

import (
	"math"

	"github.com/jonathan/talent-match/internal/types"
)

// SkillsScorer converts skill assessments into a 0-100 score by averaging
// level score x relevance multiplier across all skills, then penalizing
// thin skill sets with a sufficiency factor.
type SkillsScorer struct {
	cfg Config
}

// NewSkillsScorer creates a scorer with the given configuration
func NewSkillsScorer(cfg Config) *SkillsScorer {
	return &SkillsScorer{cfg: cfg}
}

// Score returns the skills score in [0,100], rounded to 2 decimals.
// An empty list scores 0. Enum values are validated at extraction time; a
// value missing from the tables contributes 0 for that entry.
func (s *SkillsScorer) Score(skills []types.SkillAssessment) float64 {
	if len(skills) == 0 {
		return 0.0
	}

	sufficiency := math.Min(float64(len(skills))/float64(s.cfg.MinSkills), 1.0)

	total := 0.0
	for _, skill := range skills {
		total += s.cfg.LevelScores[skill.Level] * s.cfg.RelevanceMultipliers[skill.Relevance]
	}
	avg := total / float64(len(skills))

	return round2(avg * sufficiency)
}
