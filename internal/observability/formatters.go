// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hyadav1201/autofolio/internal/types"
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

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CanonicalProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.FullName)))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(profile.CurrentRole)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(profile.Location)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Email)))

	if len(profile.TechnicalSkills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.TechnicalSkills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(profile.TechnicalSkills[:count], ", ")))
		if len(profile.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.TechnicalSkills)-maxItemsToShow))
		}
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			entry := exp.JobTitle
			if exp.Organization != "" {
				entry += " at " + exp.Organization
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			edu := profile.Education[i]
			entry := edu.Degree
			if edu.Institution != "" {
				entry += ", " + edu.Institution
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProvenance outputs which fields were machine-populated and by which
// extraction tier.
func (p *Printer) PrintProvenance(source types.DraftSource, provenance types.ProvenanceSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Fields:   %d populated\n", provenance.Len()))

	fields := provenance.Fields()
	if len(fields) > 0 {
		sb.WriteString("\n")
		count := min(len(fields), maxItemsToShow*2)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", fields[i]))
		}
		if len(fields) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fields)-count))
		}
	}

	p.printBox("FIELD PROVENANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs degradation warnings collected during extraction.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warning(s):\n\n", len(warnings)))
	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTION WARNINGS", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
