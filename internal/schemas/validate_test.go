package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExperiencePayload = `{
  "experiences": [
    {
      "position": "Backend Engineer",
      "company": "Acme",
      "dates": {"start_date": "15-01-2023", "end_date": null},
      "relevance_explanation": "Built Go services",
      "match_type": "DIRECT",
      "relevant_skills": ["Go", "PostgreSQL"]
    }
  ]
}`

func TestValidateBytes_ExperienceValid(t *testing.T) {
	assert.NoError(t, ValidateBytes(DimensionExperience, []byte(validExperiencePayload)))
}

func TestValidateBytes_ExperienceEmptyListValid(t *testing.T) {
	assert.NoError(t, ValidateBytes(DimensionExperience, []byte(`{"experiences": []}`)))
}

func TestValidateBytes_ExperienceBadMatchType(t *testing.T) {
	payload := `{
	  "experiences": [
	    {
	      "position": "Engineer",
	      "company": "Acme",
	      "dates": {"start_date": "15-01-2023"},
	      "relevance_explanation": "",
	      "match_type": "SOMEWHAT",
	      "relevant_skills": []
	    }
	  ]
	}`

	err := ValidateBytes(DimensionExperience, []byte(payload))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, DimensionExperience, ve.Dimension)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateBytes_ExperienceBadDateFormat(t *testing.T) {
	payload := `{
	  "experiences": [
	    {
	      "position": "Engineer",
	      "company": "Acme",
	      "dates": {"start_date": "2023-01-15"},
	      "relevance_explanation": "",
	      "match_type": "DIRECT",
	      "relevant_skills": []
	    }
	  ]
	}`

	var ve *ValidationError
	assert.ErrorAs(t, ValidateBytes(DimensionExperience, []byte(payload)), &ve)
}

func TestValidateBytes_SkillsValid(t *testing.T) {
	payload := `{
	  "skills": [
	    {"skill_name": "Go", "relevance_explanation": "Core language for the role", "level": "ADVANCED", "relevance": "VERY_HIGH"},
	    {"skill_name": "Excel", "relevance_explanation": "Not used in this position", "level": "BASIC", "relevance": "NONE"}
	  ]
	}`

	assert.NoError(t, ValidateBytes(DimensionSkills, []byte(payload)))
}

func TestValidateBytes_SkillsBadLevel(t *testing.T) {
	payload := `{"skills": [{"skill_name": "Go", "relevance_explanation": "", "level": "EXPERT", "relevance": "HIGH"}]}`

	var ve *ValidationError
	require.ErrorAs(t, ValidateBytes(DimensionSkills, []byte(payload)), &ve)
	assert.Equal(t, DimensionSkills, ve.Dimension)
}

func TestValidateBytes_EducationValid(t *testing.T) {
	payload := `{
	  "education": {
	    "education_fit": "MSc Computer Science aligns directly",
	    "relevant_courses": ["Distributed Systems"],
	    "relevance_level": "VERY_HIGH"
	  }
	}`
	assert.NoError(t, ValidateBytes(DimensionEducation, []byte(payload)))
}

func TestValidateBytes_EducationMissingLevel(t *testing.T) {
	payload := `{"education": {"education_fit": "MSc Computer Science", "relevant_courses": []}}`

	var ve *ValidationError
	assert.ErrorAs(t, ValidateBytes(DimensionEducation, []byte(payload)), &ve)
}

func TestValidateBytes_SummaryValid(t *testing.T) {
	payload := `{
	  "summary": {
	    "overall_assessment": "Strong candidate",
	    "strengths": ["Go expertise"],
	    "areas_of_improvement": ["No cloud certifications"]
	  }
	}`

	assert.NoError(t, ValidateBytes(DimensionSummary, []byte(payload)))
}

func TestValidateBytes_SummaryToleratesStrayFitScore(t *testing.T) {
	// A fit_score volunteered by the generative step passes validation; the
	// orchestrator overwrites it with the computed value afterwards.
	payload := `{
	  "summary": {
	    "overall_assessment": "Strong candidate",
	    "strengths": [],
	    "areas_of_improvement": [],
	    "fit_score": 99.9
	  }
	}`

	assert.NoError(t, ValidateBytes(DimensionSummary, []byte(payload)))
}

func TestValidateBytes_SummaryMissingAssessment(t *testing.T) {
	payload := `{"summary": {"strengths": [], "areas_of_improvement": []}}`

	var ve *ValidationError
	assert.ErrorAs(t, ValidateBytes(DimensionSummary, []byte(payload)), &ve)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	var ve *ValidationError
	assert.ErrorAs(t, ValidateBytes(DimensionSkills, []byte(`{"skills": [`)), &ve)
}

func TestValidateBytes_UnknownDimension(t *testing.T) {
	var le *SchemaLoadError
	assert.ErrorAs(t, ValidateBytes(Dimension("sentiment"), []byte(`{}`)), &le)
}
