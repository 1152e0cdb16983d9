// Package normalize cleans raw extracted resume text into a stable form
// suitable for entity extraction and scoring.
package normalize

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// Text cleans raw extracted text. The steps are order dependent:
// line endings are unified first, then horizontal whitespace runs are
// collapsed to a single space, runs of three or more newlines are
// collapsed to exactly two (intentional blank-line section breaks
// survive), the whole text is trimmed, and finally each line is
// right-trimmed. The result is stable: Text(Text(s)) == Text(s).
func Text(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// IsValid reports whether cleaned text has any content. Empty and
// whitespace-only input is invalid.
func IsValid(text string) bool {
	return strings.TrimSpace(text) != ""
}
