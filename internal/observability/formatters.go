// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
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
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of a resume document and
// the template it will be rendered with.
func (p *Printer) PrintDocument(doc *types.ResumeDocument, tmpl *types.TemplateDescriptor) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", doc.PersonalInfo.Email))
	}
	if tmpl != nil {
		sb.WriteString(fmt.Sprintf("Template:  %s (%s)\n", tmpl.Name, tmpl.Category))
	}
	if doc.PersonalInfo.ProfileImage != "" {
		sb.WriteString("Photo:     yes\n")
	}
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(doc.Experience)))
		count := min(len(doc.Experience), maxItemsToShow)
		for _, e := range doc.Experience[:count] {
			sb.WriteString(fmt.Sprintf("  • %s", e.JobTitle))
			if e.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", e.Company))
			}
			if e.Current {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		writeMore(&sb, len(doc.Experience))
	}

	if len(doc.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(doc.Education)))
		count := min(len(doc.Education), maxItemsToShow)
		for _, e := range doc.Education[:count] {
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", e.Degree, e.School))
		}
		writeMore(&sb, len(doc.Education))
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(names, ", ")))
	}

	if !wizard.FormValid(*doc) {
		sb.WriteString("\nIncomplete: name, email, experience and education are required\n")
	}

	p.printBox("RESUME DOCUMENT", sb.String())
}

func writeMore(sb *strings.Builder, total int) {
	if total > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", total-maxItemsToShow))
	}
}
