package ingestion

import (
	"fmt"

	"github.com/jonathan/resume-insights/internal/types"
)

// UnsupportedFileTypeError indicates a document whose extension maps to
// no extraction strategy. Fatal, never retried.
type UnsupportedFileTypeError struct {
	Key string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type for %q: only .pdf and .docx are accepted", e.Key)
}

// ExtractionError wraps a text extraction failure after any allowed
// retries are exhausted, or on a non-retryable cause. Fatal, surfaced
// to the caller.
type ExtractionError struct {
	FileType types.FileType
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text extraction failed (%s): %s: %v", e.FileType, e.Message, e.Cause)
	}
	return fmt.Sprintf("text extraction failed (%s): %s", e.FileType, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
