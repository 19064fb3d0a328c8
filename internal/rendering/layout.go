package rendering

import (
	"github.com/jonathan/resume-forge/internal/classification"
	"github.com/jonathan/resume-forge/internal/types"
)

// Page geometry in points (Letter, 612x792).
const (
	pageWidth  = 612.0
	pageHeight = 792.0

	marginTop    = 54.0
	marginBottom = 54.0
	marginLeft   = 54.0
	marginRight  = 54.0

	// sidebarWidth is one third of the page; sidebar layouts pin it to one
	// edge and flow the main content in the remaining two thirds.
	sidebarWidth = pageWidth / 3
	sidebarPad   = 18.0

	headerBandHeight = 96.0

	// Remaining-space thresholds before forcing a page break.
	sectionBreakRoom = 60.0
	lineBreakRoom    = 40.0

	bulletIndent = 14.0
	bulletGlyph  = "•"
)

// lineHeight returns the vertical advance per text line for a spacing mode.
func lineHeight(spacing types.Spacing) float64 {
	if spacing == types.SpacingCompact {
		return 11.0
	}
	return 14.0
}

// HeadingStyle describes the decoration a template family applies to section
// headings. The PDF and structured renderers consume the same mapping so the
// two outputs can never disagree on which template gets which decoration.
type HeadingStyle struct {
	Underline bool
	Band      bool
}

// HeadingDecoration maps a layout to its section-heading decoration.
func HeadingDecoration(layout types.LayoutKind) HeadingStyle {
	switch layout {
	case types.LayoutHeaderBand:
		return HeadingStyle{Band: true}
	case types.LayoutSidebarRight:
		return HeadingStyle{}
	default:
		return HeadingStyle{Underline: true}
	}
}

// pdfFontFamily maps a customization font id onto a core PDF font family.
func pdfFontFamily(id string) string {
	switch id {
	case "times":
		return "Times"
	case "courier":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// docxFontFamily maps a customization font id onto a Word font name.
func docxFontFamily(id string) string {
	switch id {
	case "times":
		return "Times New Roman"
	case "courier":
		return "Courier New"
	default:
		return "Arial"
	}
}

// sectionLines classifies every raw line of a section. Both renderers build
// their content from this single helper.
func sectionLines(seg types.SegmentedResume, name types.SectionName) []classification.Line {
	raw := seg.Section(name)
	lines := make([]classification.Line, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, classification.Classify(line, name))
	}
	return lines
}

// contactFields returns the non-empty contact fields in display order.
func contactFields(contact types.ContactInfo) []string {
	fields := make([]string, 0, 4)
	for _, f := range []string{contact.Email, contact.Phone, contact.Profile, contact.Location} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
