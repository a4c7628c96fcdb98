// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmatsuda/resume-screener/internal/ranking"
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

// PrintJobAttributes outputs a human-readable summary of the skills and
// experience extracted from the job description.
func (p *Printer) PrintJobAttributes(job *ranking.JobAttributes) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Required experience: %d years\n", job.RequiredYears))
	sb.WriteString("\n")

	if len(job.Skills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Skills[i]))
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No vocabulary skills found in job description.\n")
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedResults outputs the top N ranked candidates with scores and
// matched skills.
func (p *Printer) PrintRankedResults(results []ranking.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.ID))
		sb.WriteString(fmt.Sprintf("    Match: %.2f%%  Experience: %.1f years\n",
			result.MatchPercentage, result.CandidateYears))
		if len(result.MatchedSkills) > 0 {
			matched := strings.Join(result.MatchedSkills, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", matched))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", sb.String())
}
