// Package types provides type definitions for structured data used throughout the resume-insights pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// FileType identifies the document format inferred from a storage key
type FileType string

// Supported document formats
const (
	FileTypePdf     FileType = "pdf"
	FileTypeDocx    FileType = "docx"
	FileTypeUnknown FileType = "unknown"
)

// DocumentIdentity is an opaque reference to a stored document.
// It is immutable once created.
type DocumentIdentity struct {
	Bucket   string   `json:"bucket"`
	Key      string   `json:"key"`
	FileType FileType `json:"file_type"`
}

// NewDocumentIdentity builds an identity for a stored object, inferring
// the file type from the key's extension (case-insensitive).
func NewDocumentIdentity(bucket, key string) DocumentIdentity {
	return DocumentIdentity{
		Bucket:   bucket,
		Key:      key,
		FileType: ClassifyFileType(key),
	}
}

// ClassifyFileType infers a FileType from a storage key's extension.
// Unknown is not itself an error; callers decide whether routing an
// unknown type is fatal.
func ClassifyFileType(key string) FileType {
	lower := strings.ToLower(key)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return FileTypePdf
	case strings.HasSuffix(lower, ".docx"):
		return FileTypeDocx
	default:
		return FileTypeUnknown
	}
}

// ExtractionOutcome is the result of a single text extraction attempt
type ExtractionOutcome struct {
	RawText      string   `json:"raw_text"`
	Success      bool     `json:"success"`
	FileType     FileType `json:"file_type"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// InvocationPayload carries normalized resume text between pipeline stages.
// It is passed opaquely to the receiving stage.
type InvocationPayload struct {
	CorrelationID  string `json:"correlation_id" validate:"required"`
	ResumeID       string `json:"resume_id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
	RequesterID    string `json:"requester_id,omitempty"`
}
