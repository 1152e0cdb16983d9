// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEntities outputs a human-readable summary of extracted entities.
func (p *Printer) PrintEntities(entities *types.ExtractedEntities) {
	if entities == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", valueOrDash(entities.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", valueOrDash(entities.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", valueOrDash(entities.Phone)))
	sb.WriteString(fmt.Sprintf("Method: %s\n", entities.Method))

	if len(entities.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(entities.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", entities.Skills[i]))
		}
		if len(entities.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entities.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED ENTITIES", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of a fit analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.FitScore != nil {
		sb.WriteString(fmt.Sprintf("Fit score: %.1f\n", *result.FitScore))
	} else {
		sb.WriteString("Fit score: (no job description)\n")
	}
	sb.WriteString(fmt.Sprintf("Method:    %s\n", result.Method))
	if result.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:      %s at %s\n", result.JobTitle, result.Company))
	}

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched:   %s\n", strings.Join(result.MatchedSkills, ", ")))
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", strings.Join(result.MissingSkills, ", ")))
	}

	if len(result.ImprovementPlan) > 0 {
		sb.WriteString("\nImprovement plan:\n")
		count := min(len(result.ImprovementPlan), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := result.ImprovementPlan[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", item.Area, item.Advice))
		}
		if len(result.ImprovementPlan) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ImprovementPlan)-maxItemsToShow))
		}
	}

	p.printBox("FIT ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs entities plus the analysis, when present.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}
	p.PrintEntities(&profile.Entities)
	if profile.Analysis != nil {
		p.PrintAnalysis(profile.Analysis)
	}
}

func valueOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
