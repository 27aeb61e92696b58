// Package scoring implements the numeric fit-score algorithms: the
// experience duration/recency model, relevance-weighted skill averaging,
// the education relevance lookup, and the weighted composite.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/talent-match/internal/types"
)

// weightSumTolerance bounds floating point drift when checking that weight
// groups sum to 1.0
const weightSumTolerance = 1e-9

// ConfigError reports an invalid scoring configuration. It is raised at
// construction time so a bad weight table can never reach a scorer.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scoring config error in %s: %s", e.Field, e.Message)
}

// Config holds every numeric constant used by the scorers. It is built once
// at process start and passed by value into the scorers; there is no global
// cached instance.
type Config struct {
	// Composite weights, must sum to 1.0
	ExperienceWeight float64 `json:"experience_weight"`
	SkillsWeight     float64 `json:"skills_weight"`
	EducationWeight  float64 `json:"education_weight"`

	// Experience curve
	MaxYearsFullScore float64 `json:"max_years_full_score"`
	DirectScore       float64 `json:"direct_score"`
	RelatedScore      float64 `json:"related_score"`
	DirectWeight      float64 `json:"direct_weight"`
	RelatedWeight     float64 `json:"related_weight"`
	RecencyBonus      float64 `json:"recency_bonus"`
	RecencyYears      float64 `json:"recency_years"`

	// Skills
	MinSkills            int                              `json:"min_skills"`
	LevelScores          map[types.SkillLevel]float64     `json:"level_scores"`
	RelevanceMultipliers map[types.RelevanceLevel]float64 `json:"relevance_multipliers"`

	// Education
	EducationScores map[types.RelevanceLevel]float64 `json:"education_scores"`
}

// DefaultConfig returns the standard scoring configuration
func DefaultConfig() Config {
	return Config{
		ExperienceWeight: 0.4,
		SkillsWeight:     0.3,
		EducationWeight:  0.3,

		MaxYearsFullScore: 5,
		DirectScore:       100.0,
		RelatedScore:      20.0,
		DirectWeight:      0.7,
		RelatedWeight:     0.3,
		RecencyBonus:      0.2,
		RecencyYears:      2,

		MinSkills: 5,
		LevelScores: map[types.SkillLevel]float64{
			types.LevelBasic:        33.3,
			types.LevelIntermediate: 66.6,
			types.LevelAdvanced:     100.0,
		},
		RelevanceMultipliers: map[types.RelevanceLevel]float64{
			types.RelevanceNone:     0.0,
			types.RelevanceVeryLow:  0.2,
			types.RelevanceLow:      0.4,
			types.RelevanceMedium:   0.6,
			types.RelevanceHigh:     0.8,
			types.RelevanceVeryHigh: 1.0,
		},
		EducationScores: map[types.RelevanceLevel]float64{
			types.RelevanceNone:     0.0,
			types.RelevanceVeryLow:  20.0,
			types.RelevanceLow:      40.0,
			types.RelevanceMedium:   60.0,
			types.RelevanceHigh:     80.0,
			types.RelevanceVeryHigh: 100.0,
		},
	}
}

// Validate checks the configuration invariants: weight groups sum to 1.0 and
// every constant sits in its valid range.
func (c Config) Validate() error {
	if sum := c.ExperienceWeight + c.SkillsWeight + c.EducationWeight; math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{
			Field:   "experience_weight/skills_weight/education_weight",
			Message: fmt.Sprintf("weights must sum to 1.0, got %v", sum),
		}
	}
	if sum := c.DirectWeight + c.RelatedWeight; math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{
			Field:   "direct_weight/related_weight",
			Message: fmt.Sprintf("experience type weights must sum to 1.0, got %v", sum),
		}
	}
	for field, w := range map[string]float64{
		"experience_weight": c.ExperienceWeight,
		"skills_weight":     c.SkillsWeight,
		"education_weight":  c.EducationWeight,
		"direct_weight":     c.DirectWeight,
		"related_weight":    c.RelatedWeight,
	} {
		if w < 0 || w > 1 {
			return &ConfigError{Field: field, Message: fmt.Sprintf("must be within [0,1], got %v", w)}
		}
	}
	if c.MaxYearsFullScore <= 0 {
		return &ConfigError{Field: "max_years_full_score", Message: "must be positive"}
	}
	if c.RecencyBonus < 0 {
		return &ConfigError{Field: "recency_bonus", Message: "must be non-negative"}
	}
	if c.RecencyYears < 0 {
		return &ConfigError{Field: "recency_years", Message: "must be non-negative"}
	}
	if c.MinSkills <= 0 {
		return &ConfigError{Field: "min_skills", Message: "must be positive"}
	}
	for field, table := range map[string]map[types.SkillLevel]float64{"level_scores": c.LevelScores} {
		for level, score := range table {
			if score < 0 || score > 100 {
				return &ConfigError{Field: field, Message: fmt.Sprintf("%s must be within [0,100], got %v", level, score)}
			}
		}
	}
	for level, m := range c.RelevanceMultipliers {
		if m < 0 || m > 1 {
			return &ConfigError{Field: "relevance_multipliers", Message: fmt.Sprintf("%s must be within [0,1], got %v", level, m)}
		}
	}
	for level, score := range c.EducationScores {
		if score < 0 || score > 100 {
			return &ConfigError{Field: "education_scores", Message: fmt.Sprintf("%s must be within [0,100], got %v", level, score)}
		}
	}
	if c.DirectScore < 0 || c.DirectScore > 100 {
		return &ConfigError{Field: "direct_score", Message: "must be within [0,100]"}
	}
	if c.RelatedScore < 0 || c.RelatedScore > 100 {
		return &ConfigError{Field: "related_score", Message: "must be within [0,100]"}
	}
	return nil
}

// round2 rounds to 2 decimal places; every public score passes through it
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
