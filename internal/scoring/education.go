package scoring

import (
	"github.com/jonathan/talent-match/internal/types"
)

// EducationScorer maps the qualitative education relevance level directly to
// a 0-100 score via the configured table.
type EducationScorer struct {
	cfg Config
}

// NewEducationScorer creates a scorer with the given configuration
func NewEducationScorer(cfg Config) *EducationScorer {
	return &EducationScorer{cfg: cfg}
}

// Score returns the education score. A relevance level missing from the
// table maps to 0.
func (s *EducationScorer) Score(education types.EducationAssessment) float64 {
	return s.cfg.EducationScores[education.RelevanceLevel]
}
