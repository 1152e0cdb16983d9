package ingestion

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/ocr"
	"github.com/jonathan/resume-insights/internal/retry"
	"github.com/jonathan/resume-insights/internal/storage"
	"github.com/jonathan/resume-insights/internal/types"
)

// OCR retry policy: two retries with exponential backoff, transient
// service classes only. Any other failure is fatal immediately.
const (
	ocrMaxRetries  = 2
	ocrBackoffBase = time.Second
)

// OCRExtractor extracts text from scanned PDF documents via the OCR
// service. Detected line blocks are ordered by their vertical position
// on the page before joining.
type OCRExtractor struct {
	store       storage.Reader
	client      ocr.Client
	logger      *zap.Logger
	backoffBase time.Duration
}

// NewOCRExtractor builds the OCR-backed extraction strategy.
func NewOCRExtractor(store storage.Reader, client ocr.Client, logger *zap.Logger) *OCRExtractor {
	return &OCRExtractor{
		store:       store,
		client:      client,
		logger:      logging.OrNop(logger),
		backoffBase: ocrBackoffBase,
	}
}

// Extract reads the stored document and runs text detection on it.
func (e *OCRExtractor) Extract(ctx context.Context, identity types.DocumentIdentity) (types.ExtractionOutcome, error) {
	outcome := types.ExtractionOutcome{FileType: identity.FileType}

	if err := storage.ValidateRef(identity.Bucket, identity.Key); err != nil {
		outcome.ErrorMessage = err.Error()
		return outcome, err
	}

	// Confirm the object is readable before paying for detection.
	if _, err := e.store.Read(ctx, identity.Bucket, identity.Key); err != nil {
		outcome.ErrorMessage = err.Error()
		return outcome, &ExtractionError{FileType: identity.FileType, Message: "document read failed", Cause: err}
	}

	policy := retry.Policy{
		MaxRetries: ocrMaxRetries,
		Delay:      retry.ExponentialBackoff(e.backoffBase),
		Retryable:  ocr.IsTransient,
	}

	blocks, err := retry.Do(ctx, policy, identity.Key, func(ctx context.Context) ([]ocr.TextBlock, error) {
		return e.client.DetectText(ctx, identity.Bucket, identity.Key)
	})
	if err != nil {
		e.logger.Error("ocr detection failed",
			zap.String("key", identity.Key),
			zap.Error(err))
		outcome.ErrorMessage = err.Error()
		return outcome, &ExtractionError{FileType: identity.FileType, Message: "text detection failed", Cause: err}
	}

	outcome.RawText = assembleLines(blocks)
	outcome.Success = true
	e.logger.Debug("ocr extraction complete",
		zap.String("key", identity.Key),
		zap.Int("blocks", len(blocks)),
		zap.Int("chars", len(outcome.RawText)))
	return outcome, nil
}

// assembleLines keeps line-level blocks, drops page-level ones (their
// text duplicates the lines), orders by vertical position ascending,
// and joins with newlines.
func assembleLines(blocks []ocr.TextBlock) string {
	lines := make([]ocr.TextBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Type == ocr.BlockTypeLine {
			lines = append(lines, b)
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Top < lines[j].Top
	})

	texts := make([]string, len(lines))
	for i, b := range lines {
		texts[i] = b.Text
	}
	return strings.Join(texts, "\n")
}
