package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for response payloads
var validate = validator.New()

// ExperienceResponse is the wire envelope for the experience extraction.
// An empty list is valid: a CV may simply contain no work history.
type ExperienceResponse struct {
	Experiences []ExperienceRecord `json:"experiences" validate:"dive"`
}

// SkillsResponse is the wire envelope for the skills extraction
type SkillsResponse struct {
	Skills []SkillAssessment `json:"skills" validate:"dive"`
}

// EducationResponse is the wire envelope for the education extraction
type EducationResponse struct {
	Education EducationAssessment `json:"education"`
}

// SummaryResponse is the wire envelope for the narrative summary. The
// contract intentionally carries no fit score; the orchestrator supplies it.
type SummaryResponse struct {
	Summary Summary `json:"summary"`
}

// Validate checks required fields, enum membership, and the date invariants
// of every experience record.
func (r ExperienceResponse) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for i, exp := range r.Experiences {
		if err := exp.Dates.Validate(); err != nil {
			return fmt.Errorf("experience %d (%s at %s): %w", i, exp.Position, exp.Company, err)
		}
	}
	return nil
}

// Validate checks required fields and enum membership for every skill
func (r SkillsResponse) Validate() error {
	return validate.Struct(r)
}

// Validate checks required fields and enum membership
func (r EducationResponse) Validate() error {
	return validate.Struct(r)
}

// Validate checks that a summary payload is present
func (r SummaryResponse) Validate() error {
	return validate.Struct(r)
}
