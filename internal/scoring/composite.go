package scoring

import (
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

// Breakdown exposes the per-dimension sub-scores behind a composite score
type Breakdown struct {
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Education  float64 `json:"education"`
	Composite  float64 `json:"composite"`
}

// CompositeScorer combines the three dimension scores into the final fit
// score using the configured weights. It has no side effects and is usable
// independently of the orchestrator.
type CompositeScorer struct {
	cfg        Config
	experience *ExperienceScorer
	skills     *SkillsScorer
	education  *EducationScorer
}

// NewCompositeScorer validates the configuration and builds the three
// sub-scorers. An invalid weight table is rejected here, before any
// evaluation can run.
func NewCompositeScorer(cfg Config) (*CompositeScorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CompositeScorer{
		cfg:        cfg,
		experience: NewExperienceScorer(cfg),
		skills:     NewSkillsScorer(cfg),
		education:  NewEducationScorer(cfg),
	}, nil
}

// WithClock overrides the evaluation date source, for reproducible tests
func (c *CompositeScorer) WithClock(now func() time.Time) *CompositeScorer {
	c.experience.Now = now
	return c
}

// Score returns the weighted composite fit score in [0,100], rounded to 2
// decimals.
func (c *CompositeScorer) Score(evaluation types.PartialEvaluation) float64 {
	return c.Breakdown(evaluation).Composite
}

// Breakdown computes the three sub-scores and their weighted combination
func (c *CompositeScorer) Breakdown(evaluation types.PartialEvaluation) Breakdown {
	expScore := c.experience.Score(evaluation.Experiences)
	skillsScore := c.skills.Score(evaluation.Skills)
	eduScore := c.education.Score(evaluation.Education)

	composite := expScore*c.cfg.ExperienceWeight +
		skillsScore*c.cfg.SkillsWeight +
		eduScore*c.cfg.EducationWeight

	return Breakdown{
		Experience: expScore,
		Skills:     skillsScore,
		Education:  eduScore,
		Composite:  round2(composite),
	}
}
