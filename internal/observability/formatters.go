// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/analyze"
	"github.com/jonathan/resume-screener/internal/stats"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills displayed in summaries
	maxSkillsToShow = 5
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

// PrintReport outputs a human-readable summary of one resume analysis.
func (p *Printer) PrintReport(report *analyze.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", report.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", report.Contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", report.Contact.Phone))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:    %3d/100\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:     %3d/100\n", report.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience: %3d/100\n", report.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:  %3d/100\n", report.EducationScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills found: %s\n", stats.FormatSkillsList(report.ExtractedSkills, maxSkillsToShow)))
	if len(report.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:      %s\n", strings.Join(report.MatchedSkills, ", ")))
	}

	p.printBox("Resume Analysis", strings.TrimRight(sb.String(), "\n"))
}
