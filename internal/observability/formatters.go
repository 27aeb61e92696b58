// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the evaluate command
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs the composite score and its per-dimension parts
func (p *Printer) PrintBreakdown(breakdown scoring.Breakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience:  %6.2f\n", breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Skills:      %6.2f\n", breakdown.Skills))
	sb.WriteString(fmt.Sprintf("Education:   %6.2f\n", breakdown.Education))
	sb.WriteString(strings.Repeat("─", 20) + "\n")
	sb.WriteString(fmt.Sprintf("Fit score:   %6.2f", breakdown.Composite))

	p.printBox("Score Breakdown", sb.String())
}

// PrintSummary outputs the narrative assessment
func (p *Printer) PrintSummary(summary types.Summary) {
	var sb strings.Builder

	sb.WriteString(summary.OverallAssessment)
	sb.WriteString("\n")

	if len(summary.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(summary.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Strengths[i]))
		}
	}

	if len(summary.AreasOfImprovement) > 0 {
		sb.WriteString("\nAreas of improvement:\n")
		count := min(len(summary.AreasOfImprovement), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.AreasOfImprovement[i]))
		}
	}

	p.printBox("Assessment", strings.TrimRight(sb.String(), "\n"))
}

// PrintExperiences outputs the classified work experiences
func (p *Printer) PrintExperiences(experiences []types.ExperienceRecord) {
	if len(experiences) == 0 {
		return
	}

	var sb strings.Builder
	for _, exp := range experiences {
		end := "present"
		if exp.Dates.EndDate != nil {
			end = *exp.Dates.EndDate
		}
		sb.WriteString(fmt.Sprintf("%s @ %s [%s]\n", exp.Position, exp.Company, exp.MatchType))
		sb.WriteString(fmt.Sprintf("  %s → %s\n", exp.Dates.StartDate, end))
	}

	p.printBox("Experience", strings.TrimRight(sb.String(), "\n"))
}
