// Package ocr defines the optical character recognition capability used
// for scanned PDF resumes, plus a JSON-over-HTTP adapter for it.
package ocr

import (
	"context"
	"errors"
	"fmt"
)

// BlockType tags a detected text block.
type BlockType string

// Block types returned by the OCR service. Only line blocks carry
// usable text; page blocks duplicate their children.
const (
	BlockTypeLine BlockType = "LINE"
	BlockTypePage BlockType = "PAGE"
	BlockTypeWord BlockType = "WORD"
)

// TextBlock is one detected region of text with a vertical-position
// hint in page coordinates (0 = top).
type TextBlock struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
	Top  float64   `json:"top"`
}

// Client is the OCR call consumed by the PDF extraction strategy.
type Client interface {
	DetectText(ctx context.Context, bucket, key string) ([]TextBlock, error)
}

// Error classes, mirroring the service's error-class flag. Transient
// classes are likely to succeed on retry.
const (
	CodeServiceUnavailable = "ServiceUnavailable"
	CodeInternalError      = "InternalError"
	CodeThrottling         = "Throttling"
	CodeBadDocument        = "BadDocument"
	CodeAccessDenied       = "AccessDenied"
)

// Error is a classified OCR service failure.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ocr error %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("ocr error %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether an error is a retryable OCR failure.
// Anything that is not a classified transient OCR error is fatal.
func IsTransient(err error) bool {
	var ocrErr *Error
	if !errors.As(err, &ocrErr) {
		return false
	}
	switch ocrErr.Code {
	case CodeServiceUnavailable, CodeInternalError, CodeThrottling:
		return true
	default:
		return false
	}
}
