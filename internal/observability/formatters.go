// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxLinesToShow is the default number of content lines to display per section
	maxLinesToShow = 5
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

// PrintContact outputs the contact fields extracted from the raw text.
func (p *Printer) PrintContact(contact types.ContactInfo) {
	var sb strings.Builder

	writeField := func(label, value string) {
		if value == "" {
			value = "(not found)"
		}
		sb.WriteString(fmt.Sprintf("%-9s %s\n", label+":", value))
	}
	writeField("Name", contact.Name)
	writeField("Email", contact.Email)
	writeField("Phone", contact.Phone)
	writeField("Profile", contact.Profile)

	p.printBox("EXTRACTED CONTACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSegmentation outputs a per-section summary of the segmented resume.
func (p *Printer) PrintSegmentation(seg types.SegmentedResume) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Header lines: %d\n\n", len(seg.Header)))

	for _, name := range types.SectionOrder {
		lines := seg.Section(name)
		sb.WriteString(fmt.Sprintf("%-16s %d lines\n", string(name)+":", len(lines)))

		count := min(len(lines), maxLinesToShow)
		for i := 0; i < count; i++ {
			line := lines[i]
			if line == "" {
				line = "(blank)"
			}
			if len(line) > 40 {
				line = line[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(lines) > maxLinesToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-maxLinesToShow))
		}
	}

	p.printBox("SEGMENTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs the template catalog.
func (p *Printer) PrintTemplates(catalog []types.Template) {
	var sb strings.Builder
	for i, tmpl := range catalog {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", tmpl.ID, tmpl.Layout))
		desc := tmpl.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", desc))
		if i < len(catalog)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("AVAILABLE TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRendered outputs a summary of one produced artifact.
func (p *Printer) PrintRendered(doc types.RenderedDocument) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:  %s\n", doc.Filename))
	sb.WriteString(fmt.Sprintf("Type:  %s\n", doc.MIMEType))
	sb.WriteString(fmt.Sprintf("Size:  %d bytes", len(doc.Data)))

	p.printBox("RENDERED DOCUMENT", sb.String())
}
