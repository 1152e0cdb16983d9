// Package storage abstracts the document store that uploaded resumes
// are read from.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError indicates a malformed document reference. It is never
// retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document reference: %s: %s", e.Field, e.Message)
}

// NotFoundError indicates the referenced object does not exist.
type NotFoundError struct {
	Bucket string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object %s/%s not found", e.Bucket, e.Key)
}

// Reader is the document-storage read capability consumed by the
// extraction strategies.
type Reader interface {
	Read(ctx context.Context, bucket, key string) ([]byte, error)
}

// ValidateRef checks that a bucket/key pair is usable. Both strategies
// call this before touching storage.
func ValidateRef(bucket, key string) error {
	if strings.TrimSpace(bucket) == "" {
		return &ValidationError{Field: "bucket", Message: "must not be empty"}
	}
	if strings.TrimSpace(key) == "" {
		return &ValidationError{Field: "key", Message: "must not be empty"}
	}
	return nil
}

// FSReader reads documents from a local directory tree, mapping the
// bucket to a subdirectory of Root.
type FSReader struct {
	Root string
}

// NewFSReader creates a filesystem-backed document reader rooted at root.
func NewFSReader(root string) *FSReader {
	return &FSReader{Root: root}
}

// Read returns the raw bytes of a stored document.
func (r *FSReader) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ValidateRef(bucket, key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.Root, bucket, filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Bucket: bucket, Key: key}
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, key, err)
	}
	return data, nil
}
