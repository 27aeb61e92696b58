// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType classifies how a work experience relates to the target job
type MatchType string

// MatchType values returned by the experience extraction
const (
	MatchDirect    MatchType = "DIRECT"
	MatchRelated   MatchType = "RELATED"
	MatchUnrelated MatchType = "UNRELATED"
)

// SkillLevel represents the assessed proficiency for a single skill
type SkillLevel string

// SkillLevel values returned by the skills extraction
const (
	LevelBasic        SkillLevel = "BASIC"
	LevelIntermediate SkillLevel = "INTERMEDIATE"
	LevelAdvanced     SkillLevel = "ADVANCED"
)

// RelevanceLevel is the qualitative 6-step relevance scale shared by the
// skills and education assessments
type RelevanceLevel string

// RelevanceLevel values, ordered from no signal to strongest signal
const (
	RelevanceNone     RelevanceLevel = "NONE"
	RelevanceVeryLow  RelevanceLevel = "VERY_LOW"
	RelevanceLow      RelevanceLevel = "LOW"
	RelevanceMedium   RelevanceLevel = "MEDIUM"
	RelevanceHigh     RelevanceLevel = "HIGH"
	RelevanceVeryHigh RelevanceLevel = "VERY_HIGH"
)
