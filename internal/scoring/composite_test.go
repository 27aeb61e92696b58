package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/types"
)

func strongCandidate() types.PartialEvaluation {
	return types.PartialEvaluation{
		Experiences: []types.ExperienceRecord{
			directExperience("15-01-2023", nil),
		},
		Skills: []types.SkillAssessment{
			skill("Go", types.LevelAdvanced, types.RelevanceVeryHigh),
			skill("PostgreSQL", types.LevelAdvanced, types.RelevanceVeryHigh),
			skill("Kubernetes", types.LevelAdvanced, types.RelevanceVeryHigh),
			skill("gRPC", types.LevelAdvanced, types.RelevanceVeryHigh),
			skill("Terraform", types.LevelAdvanced, types.RelevanceVeryHigh),
		},
		Education: types.EducationAssessment{
			EducationFit:   "MSc Computer Science",
			RelevanceLevel: types.RelevanceVeryHigh,
		},
	}
}

func TestCompositeScore_StrongCandidate(t *testing.T) {
	scorer, err := NewCompositeScorer(DefaultConfig())
	require.NoError(t, err)
	scorer.WithClock(func() time.Time { return evaluationDate })

	breakdown := scorer.Breakdown(strongCandidate())

	assert.InDelta(t, 64.99, breakdown.Experience, 0.001)
	assert.Equal(t, 100.0, breakdown.Skills)
	assert.Equal(t, 100.0, breakdown.Education)
	// 64.99*0.4 + 100*0.3 + 100*0.3
	assert.InDelta(t, 86.0, breakdown.Composite, 0.001)
}

func TestCompositeScore_IsWeightedSumOfBreakdown(t *testing.T) {
	scorer, err := NewCompositeScorer(DefaultConfig())
	require.NoError(t, err)
	scorer.WithClock(func() time.Time { return evaluationDate })

	evaluation := types.PartialEvaluation{
		Experiences: []types.ExperienceRecord{
			directExperience("01-06-2021", strPtr("01-06-2024")),
		},
		Skills: []types.SkillAssessment{
			skill("Go", types.LevelIntermediate, types.RelevanceHigh),
			skill("Redis", types.LevelBasic, types.RelevanceMedium),
		},
		Education: types.EducationAssessment{RelevanceLevel: types.RelevanceMedium},
	}

	b := scorer.Breakdown(evaluation)
	expected := b.Experience*0.4 + b.Skills*0.3 + b.Education*0.3
	assert.InDelta(t, expected, b.Composite, 0.01)

	assert.Equal(t, b.Composite, scorer.Score(evaluation))
}

func TestCompositeScore_EmptyEvaluation(t *testing.T) {
	scorer, err := NewCompositeScorer(DefaultConfig())
	require.NoError(t, err)

	b := scorer.Breakdown(types.PartialEvaluation{})
	assert.Equal(t, 0.0, b.Experience)
	assert.Equal(t, 0.0, b.Skills)
	assert.Equal(t, 0.0, b.Education)
	assert.Equal(t, 0.0, b.Composite)
}

func TestCompositeScore_WithinBounds(t *testing.T) {
	scorer, err := NewCompositeScorer(DefaultConfig())
	require.NoError(t, err)
	scorer.WithClock(func() time.Time { return evaluationDate })

	score := scorer.Score(strongCandidate())
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
