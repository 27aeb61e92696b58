package analysis

import (
	"fmt"

	"github.com/jonathan/talent-match/internal/schemas"
)

// ExtractionError reports that one analysis dimension could not produce a
// valid structured result: the service refused, the response failed schema
// validation, or the payload did not decode. Fatal for the whole evaluation;
// there is no partial-credit path.
type ExtractionError struct {
	Dimension schemas.Dimension
	Message   string
	Cause     error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Dimension, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Dimension, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
