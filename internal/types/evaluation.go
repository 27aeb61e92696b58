package types

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for experience dates ("DD-MM-YYYY")
const DateLayout = "02-01-2006"

// daysPerYear accounts for leap years when converting day spans to years
const daysPerYear = 365.25

// ExperienceDates holds the start and optional end date of a work experience.
// A nil EndDate means the position is ongoing.
type ExperienceDates struct {
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   *string `json:"end_date"`
}

// Start parses the start date
func (d ExperienceDates) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, d.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", d.StartDate, err)
	}
	return t, nil
}

// End parses the end date, or returns asOf when the experience is ongoing
func (d ExperienceDates) End(asOf time.Time) (time.Time, error) {
	if d.EndDate == nil {
		return asOf, nil
	}
	t, err := time.Parse(DateLayout, *d.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end date %q: %w", *d.EndDate, err)
	}
	return t, nil
}

// Ongoing reports whether the experience has no end date
func (d ExperienceDates) Ongoing() bool {
	return d.EndDate == nil
}

// DurationYears returns the experience duration in years, rounded to 2
// decimals. Duration is always derived from the dates, never stored.
func (d ExperienceDates) DurationYears(asOf time.Time) (float64, error) {
	start, err := d.Start()
	if err != nil {
		return 0, err
	}
	end, err := d.End(asOf)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s precedes start date %s", end.Format(DateLayout), d.StartDate)
	}
	years := end.Sub(start).Hours() / 24 / daysPerYear
	return math.Round(years*100) / 100, nil
}

// Validate checks the date invariants: parseable start, parseable end when
// present, and end >= start.
func (d ExperienceDates) Validate() error {
	start, err := d.Start()
	if err != nil {
		return err
	}
	if d.EndDate == nil {
		return nil
	}
	end, err := d.End(time.Time{})
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s precedes start date %s", *d.EndDate, d.StartDate)
	}
	return nil
}

// ExperienceRecord is one classified work experience from the CV
type ExperienceRecord struct {
	Position             string          `json:"position" validate:"required"`
	Company              string          `json:"company" validate:"required"`
	Dates                ExperienceDates `json:"dates" validate:"required"`
	RelevanceExplanation string          `json:"relevance_explanation"`
	MatchType            MatchType       `json:"match_type" validate:"required,oneof=DIRECT RELATED UNRELATED"`
	RelevantSkills       []string        `json:"relevant_skills"`
}

// SkillAssessment is one skill extracted from the CV with its assessed
// proficiency and relevance to the target job
type SkillAssessment struct {
	SkillName            string         `json:"skill_name" validate:"required"`
	RelevanceExplanation string         `json:"relevance_explanation"`
	Level                SkillLevel     `json:"level" validate:"required,oneof=BASIC INTERMEDIATE ADVANCED"`
	Relevance            RelevanceLevel `json:"relevance" validate:"required,oneof=NONE VERY_LOW LOW MEDIUM HIGH VERY_HIGH"`
}

// EducationAssessment summarizes how the candidate's education fits the job
type EducationAssessment struct {
	RelevanceLevel  RelevanceLevel `json:"relevance_level" validate:"required,oneof=NONE VERY_LOW LOW MEDIUM HIGH VERY_HIGH"`
	RelevantCourses []string       `json:"relevant_courses"`
	EducationFit    string         `json:"education_fit"`
}

// Summary is the narrative assessment generated after scoring. FitScore is
// always the deterministically computed composite score, never a value
// produced by the extraction service.
type Summary struct {
	Strengths          []string `json:"strengths"`
	AreasOfImprovement []string `json:"areas_of_improvement"`
	OverallAssessment  string   `json:"overall_assessment"`
	FitScore           float64  `json:"fit_score"`
}

// PartialEvaluation holds the joined extraction results before scoring.
// The absence of a Summary encodes "not scored yet" in the type.
type PartialEvaluation struct {
	Experiences []ExperienceRecord  `json:"experiences"`
	Skills      []SkillAssessment   `json:"skills"`
	Education   EducationAssessment `json:"education"`
}

// CompleteEvaluation is a scored evaluation with its narrative summary
type CompleteEvaluation struct {
	PartialEvaluation
	Summary Summary `json:"summary"`
}

// Complete attaches a summary to the joined results, producing the final
// evaluation. The fit score is forced to the provided composite value.
func (p PartialEvaluation) Complete(summary Summary, fitScore float64) CompleteEvaluation {
	summary.FitScore = fitScore
	return CompleteEvaluation{PartialEvaluation: p, Summary: summary}
}
