package scoring

import (
	"math"
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

// ExperienceScorer converts classified work experiences into a 0-100 score
// using a duration-and-recency model: accumulated years per match type run
// through a smoothed logarithmic curve, combined with configured weights,
// with a bonus multiplier when any relevant experience is recent.
type ExperienceScorer struct {
	cfg Config

	// Now supplies the evaluation date; overridable in tests
	Now func() time.Time
}

// NewExperienceScorer creates a scorer with the given configuration
func NewExperienceScorer(cfg Config) *ExperienceScorer {
	return &ExperienceScorer{cfg: cfg, Now: time.Now}
}

// Score returns the experience score in [0,100], rounded to 2 decimals.
// UNRELATED experiences are discarded; if nothing remains the score is 0.
func (s *ExperienceScorer) Score(experiences []types.ExperienceRecord) float64 {
	asOf := s.Now()

	var directYears, relatedYears float64
	recent := false
	retained := 0

	for _, exp := range experiences {
		if exp.MatchType != types.MatchDirect && exp.MatchType != types.MatchRelated {
			continue
		}
		retained++

		duration, err := exp.Dates.DurationYears(asOf)
		if err != nil {
			// Dates are validated at extraction time; a malformed record
			// contributes no duration rather than poisoning the whole score.
			duration = 0
		}

		if s.isRecent(exp.Dates, asOf) {
			recent = true
		}

		switch exp.MatchType {
		case types.MatchDirect:
			directYears += duration
		case types.MatchRelated:
			relatedYears += duration
		}
	}

	if retained == 0 {
		return 0.0
	}

	directScore := s.typeScore(directYears, s.cfg.DirectScore)
	relatedScore := s.typeScore(relatedYears, s.cfg.RelatedScore)

	combined := directScore*s.cfg.DirectWeight + relatedScore*s.cfg.RelatedWeight

	if recent {
		combined = math.Min(100, combined*(1+s.cfg.RecencyBonus))
	}

	return round2(combined)
}

// isRecent reports whether the experience is ongoing or ended within the
// configured recency window of the evaluation date.
func (s *ExperienceScorer) isRecent(dates types.ExperienceDates, asOf time.Time) bool {
	if dates.Ongoing() {
		return true
	}
	end, err := dates.End(asOf)
	if err != nil {
		return false
	}
	windowDays := s.cfg.RecencyYears * 365
	return asOf.Sub(end).Hours()/24 <= windowDays
}

// typeScore applies the smoothed logarithmic curve for one experience type.
// The ln(x+1) form avoids a singularity at zero and yields diminishing
// returns as years approach MaxYearsFullScore.
func (s *ExperienceScorer) typeScore(years, baseScore float64) float64 {
	if years <= 0 {
		return 0.0
	}
	factor := math.Min(math.Log(years+1)/math.Log(s.cfg.MaxYearsFullScore+1), 1.0)
	return baseScore * factor
}
