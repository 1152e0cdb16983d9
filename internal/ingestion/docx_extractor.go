package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/storage"
	"github.com/jonathan/resume-insights/internal/types"
)

// documentPart is the main document part inside the DOCX container.
const documentPart = "word/document.xml"

// DocxExtractor extracts text from word-processor documents by opening
// the zip container and walking the paragraph nodes of the main
// document part. Malformed containers are fatal, never retried.
type DocxExtractor struct {
	store  storage.Reader
	logger *zap.Logger
}

// NewDocxExtractor builds the structured-document extraction strategy.
func NewDocxExtractor(store storage.Reader, logger *zap.Logger) *DocxExtractor {
	return &DocxExtractor{store: store, logger: logging.OrNop(logger)}
}

// Extract reads the stored container and concatenates its paragraphs.
func (e *DocxExtractor) Extract(ctx context.Context, identity types.DocumentIdentity) (types.ExtractionOutcome, error) {
	outcome := types.ExtractionOutcome{FileType: identity.FileType}

	if err := storage.ValidateRef(identity.Bucket, identity.Key); err != nil {
		outcome.ErrorMessage = err.Error()
		return outcome, err
	}

	data, err := e.store.Read(ctx, identity.Bucket, identity.Key)
	if err != nil {
		outcome.ErrorMessage = err.Error()
		return outcome, &ExtractionError{FileType: identity.FileType, Message: "document read failed", Cause: err}
	}

	text, err := parseDocx(data)
	if err != nil {
		e.logger.Error("docx parse failed", zap.String("key", identity.Key), zap.Error(err))
		outcome.ErrorMessage = err.Error()
		return outcome, &ExtractionError{FileType: identity.FileType, Message: "malformed document", Cause: err}
	}

	outcome.RawText = text
	outcome.Success = true
	e.logger.Debug("docx extraction complete",
		zap.String("key", identity.Key),
		zap.Int("chars", len(text)))
	return outcome, nil
}

// docxDocument mirrors the parts of the WordprocessingML schema the
// extractor needs: body > paragraphs > runs > text nodes.
type docxDocument struct {
	XMLName xml.Name  `xml:"document"`
	Body    *docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

// parseDocx opens the zip container and joins the non-empty paragraphs
// of the main document part with newlines. Runs within a paragraph are
// concatenated in order with no added separators.
func parseDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open document container: %w", err)
	}

	part, err := archive.Open(documentPart)
	if err != nil {
		return "", fmt.Errorf("container has no %s: %w", documentPart, err)
	}
	defer func() { _ = part.Close() }()

	partXML, err := io.ReadAll(part)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", documentPart, err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(partXML, &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", documentPart, err)
	}
	if doc.Body == nil {
		return "", fmt.Errorf("document has no body node")
	}

	var paragraphs []string
	for _, p := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, run := range p.Runs {
			for _, t := range run.Texts {
				sb.WriteString(t)
			}
		}
		if text := sb.String(); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
