package pipeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PartialFailureError reports a run that completed some persistence
// steps before one failed. The profile named by ProfileID exists; the
// caller decides whether to retry the failed step or surface the
// partial state.
type PartialFailureError struct {
	ProfileID uuid.UUID
	Completed []string
	Failed    string
	Cause     error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure for profile %s: %s failed after [%s]: %v",
		e.ProfileID, e.Failed, strings.Join(e.Completed, ", "), e.Cause)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates extraction succeeded but yielded no
// usable text after normalization.
type EmptyDocumentError struct {
	Key string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %s produced no usable text", e.Key)
}
