// Package entities extracts structured candidate facts from normalized
// resume text. The name comes from the NER service when it cooperates
// and from a line heuristic when it does not; email, phone, and skills
// are always derived locally. Extraction never fails: any service error
// degrades to the fallback path.
package entities

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/ner"
	"github.com/jonathan/resume-insights/internal/skills"
	"github.com/jonathan/resume-insights/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?(\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}`)
)

// maxNameLineLen bounds how long a line can be and still plausibly be
// a person's name in the fallback heuristic.
const maxNameLineLen = 50

// Extractor pulls candidate entities from resume text.
type Extractor struct {
	client ner.Client
	logger *zap.Logger
}

// NewExtractor builds an entity extractor over the given NER client.
// A nil client forces the fallback path.
func NewExtractor(client ner.Client, logger *zap.Logger) *Extractor {
	return &Extractor{client: client, logger: logging.OrNop(logger)}
}

// Extract derives candidate entities from text. Blank input
// short-circuits to an empty fallback result.
func (e *Extractor) Extract(ctx context.Context, text string) types.ExtractedEntities {
	if strings.TrimSpace(text) == "" {
		return types.ExtractedEntities{Method: types.MethodFallback}
	}

	result := types.ExtractedEntities{
		Email:  ExtractEmail(text),
		Phone:  ExtractPhone(text),
		Skills: skills.Match(text),
	}

	name, err := e.detectName(ctx, text)
	if err != nil {
		e.logger.Warn("ner detection failed, falling back to line heuristic", zap.Error(err))
		result.Name = FallbackName(text)
		result.Method = types.MethodFallback
	} else {
		result.Name = name
		result.Method = types.MethodPrimary
	}

	result.TotalEntitiesFound = result.CountEntities()
	return result
}

// detectName asks the NER service for person entities and picks the
// highest-confidence one. Ties keep the first-seen entity.
func (e *Extractor) detectName(ctx context.Context, text string) (string, error) {
	if e.client == nil {
		return "", errNoClient
	}

	detected, err := e.client.DetectEntities(ctx, text)
	if err != nil {
		return "", err
	}

	var name string
	best := -1.0
	for _, entity := range detected {
		if entity.Type != ner.EntityTypePerson {
			continue
		}
		if entity.Score > best {
			best = entity.Score
			name = entity.Text
		}
	}
	return name, nil
}

var errNoClient = errors.New("no NER client configured")

// ExtractEmail returns the first email address found, or empty.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number found, or empty. Accepted
// forms include an optional leading country code, optional parenthesized
// area code, and space, dot, or dash separators.
func ExtractPhone(text string) string {
	return strings.TrimSpace(phonePattern.FindString(text))
}

// FallbackName scans lines top-down for the first one that plausibly
// holds a person's name: short, no email marker, no URL, not starting
// with a digit. Returns empty if no line qualifies.
func FallbackName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) >= maxNameLineLen {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, "http") {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			continue
		}
		return line
	}
	return ""
}
