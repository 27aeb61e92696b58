// Package schemas provides JSON Schema validation for the structured
// extraction contracts. The schemas are embedded at compile time, one per
// analysis dimension plus the summary envelope.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var schemaFiles embed.FS

// Dimension names the structured contract to validate against
type Dimension string

// The four extraction contracts
const (
	DimensionExperience Dimension = "experience"
	DimensionSkills     Dimension = "skills"
	DimensionEducation  Dimension = "education"
	DimensionSummary    Dimension = "summary"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Dimension Dimension
	Errors    []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s response failed schema validation:\n", ve.Dimension))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Dimension Dimension
	Message   string
	Cause     error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s schema: %s: %v", e.Dimension, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s schema: %s", e.Dimension, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateBytes validates a JSON payload against the schema for the given
// dimension. A payload that does not satisfy the contract returns a
// *ValidationError.
func ValidateBytes(dimension Dimension, payload []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(string(dimension) + ".json")
	if err != nil {
		return &SchemaLoadError{Dimension: dimension, Message: "unknown dimension", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// gojsonschema returns an error here for malformed documents as
		// well as malformed schemas; our schemas are embedded and tested,
		// so treat this as an invalid payload.
		return &ValidationError{
			Dimension: dimension,
			Errors:    []FieldError{{Field: "(document)", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Dimension: dimension}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
