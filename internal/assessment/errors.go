package assessment

import (
	"errors"
	"fmt"
)

// ErrNoStagedData is returned when the scoring step runs with no staged
// questionnaire answers. The caller should send the user back to the
// questionnaire.
var ErrNoStagedData = errors.New("no staged questionnaire answers")

// ValidationError reports a questionnaire field that is missing or outside
// its declared range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer set: field %s %s", e.Field, e.Reason)
}
