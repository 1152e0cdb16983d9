// Package ingestion turns stored resume documents into raw text. Two
// strategies sit behind one Extractor capability: OCR for scanned PDFs
// and structured-document parsing for DOCX containers, selected by the
// document's inferred file type.
package ingestion

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/ocr"
	"github.com/jonathan/resume-insights/internal/storage"
	"github.com/jonathan/resume-insights/internal/types"
)

// Extractor produces raw text from a stored document. One outcome per
// attempt; retries of flaky service calls happen inside a strategy, not
// at this layer.
type Extractor interface {
	Extract(ctx context.Context, identity types.DocumentIdentity) (types.ExtractionOutcome, error)
}

// Router selects the extraction strategy matching a document's file type.
type Router struct {
	pdf    Extractor
	docx   Extractor
	logger *zap.Logger
}

// NewRouter builds a Router over the standard strategies.
func NewRouter(store storage.Reader, ocrClient ocr.Client, logger *zap.Logger) *Router {
	logger = logging.OrNop(logger)
	return &Router{
		pdf:    NewOCRExtractor(store, ocrClient, logger),
		docx:   NewDocxExtractor(store, logger),
		logger: logger,
	}
}

// Extract routes the document to the strategy for its file type.
// Routing an unknown type is the caller's error, reported as
// UnsupportedFileTypeError.
func (r *Router) Extract(ctx context.Context, identity types.DocumentIdentity) (types.ExtractionOutcome, error) {
	switch identity.FileType {
	case types.FileTypePdf:
		return r.pdf.Extract(ctx, identity)
	case types.FileTypeDocx:
		return r.docx.Extract(ctx, identity)
	default:
		r.logger.Warn("rejected document with unsupported file type", zap.String("key", identity.Key))
		return types.ExtractionOutcome{FileType: identity.FileType}, &UnsupportedFileTypeError{Key: identity.Key}
	}
}
