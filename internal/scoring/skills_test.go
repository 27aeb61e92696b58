package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/types"
)

func skill(name string, level types.SkillLevel, relevance types.RelevanceLevel) types.SkillAssessment {
	return types.SkillAssessment{SkillName: name, Level: level, Relevance: relevance}
}

func TestSkillsScore_EmptyList(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())
	assert.Equal(t, 0.0, s.Score(nil))
}

func TestSkillsScore_FiveAdvancedVeryHigh(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())

	skills := []types.SkillAssessment{
		skill("Go", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("PostgreSQL", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("Kubernetes", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("gRPC", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("Terraform", types.LevelAdvanced, types.RelevanceVeryHigh),
	}

	assert.Equal(t, 100.0, s.Score(skills))
}

func TestSkillsScore_SufficiencyPenalty(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())

	// Two advanced/very-high skills: per-skill value 100, penalized 2/5
	score := s.Score([]types.SkillAssessment{
		skill("Go", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("PostgreSQL", types.LevelAdvanced, types.RelevanceVeryHigh),
	})

	assert.InDelta(t, 40.0, score, 0.001)
}

func TestSkillsScore_PenaltyShrinksWithFewerSkills(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())

	advanced := func(n int) []types.SkillAssessment {
		out := make([]types.SkillAssessment, n)
		for i := range out {
			out[i] = skill("Skill", types.LevelAdvanced, types.RelevanceVeryHigh)
		}
		return out
	}

	prev := s.Score(advanced(1))
	for n := 2; n <= 5; n++ {
		cur := s.Score(advanced(n))
		assert.Greater(t, cur, prev, "score should grow up to the sufficiency threshold")
		prev = cur
	}

	// Beyond the threshold more identical skills change nothing
	assert.Equal(t, s.Score(advanced(5)), s.Score(advanced(8)))
}

func TestSkillsScore_RelevanceWeighting(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())

	// avg(100*1.0, 66.6*0.6, 33.3*0.0) = 53.32 at full sufficiency
	skills := []types.SkillAssessment{
		skill("Go", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("Python", types.LevelIntermediate, types.RelevanceMedium),
		skill("Photoshop", types.LevelBasic, types.RelevanceNone),
		skill("Docker", types.LevelAdvanced, types.RelevanceVeryHigh),
		skill("Linux", types.LevelAdvanced, types.RelevanceVeryHigh),
	}

	assert.InDelta(t, 67.99, s.Score(skills), 0.001)
}

func TestSkillsScore_WithinBounds(t *testing.T) {
	s := NewSkillsScorer(DefaultConfig())

	skills := []types.SkillAssessment{
		skill("A", types.LevelBasic, types.RelevanceVeryLow),
		skill("B", types.LevelAdvanced, types.RelevanceVeryHigh),
	}

	score := s.Score(skills)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
