// Package classification decides how a single content line should be
// rendered: as a bullet item, a sub-heading, plain prose, or a spacer.
//
// Both document renderers share this package; classification must never be
// duplicated per renderer, or their outputs drift apart.
package classification

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// Kind is the rendering category of one content line.
type Kind int

// Line kinds, in no particular order.
const (
	Prose Kind = iota
	BulletItem
	SubHeading
	Spacer
)

// String returns the kind's name for logs and test output.
func (k Kind) String() string {
	switch k {
	case BulletItem:
		return "bullet"
	case SubHeading:
		return "subheading"
	case Spacer:
		return "spacer"
	default:
		return "prose"
	}
}

// Line is a classified content line. Text carries the renderable text with
// any bullet marker already stripped; renderers add their own glyph.
type Line struct {
	Kind Kind
	Text string
}

var (
	// yearPattern matches a 4-digit year or an open-ended date word, the
	// strongest signal that a line is a job/institution header.
	yearPattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\bpresent\b|\bcurrent\b`)

	// separatorPattern matches one or two leading words followed by a pipe,
	// a dash with breathing room, or a run of spaces. Company/title/date
	// header lines tend to open this way.
	separatorPattern = regexp.MustCompile(`^\S+(?:[ \t]\S+)?[ \t]*(?:\||–|—| - |[ \t]{2,})`)
)

// bulletMarkers are the glyphs accepted as an existing bullet marker.
var bulletMarkers = []string{"- ", "* ", "• ", "-", "*", "•"}

// Classify categorizes one content line. It is a pure function of the line
// and its section: no cross-line state. Lines in the skills section are
// always bullet items regardless of shape.
func Classify(line string, section types.SectionName) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: Spacer}
	}

	if section == types.SectionSkills {
		return Line{Kind: BulletItem, Text: stripMarker(trimmed)}
	}

	if marker := leadingMarker(trimmed); marker != "" {
		return Line{Kind: BulletItem, Text: stripMarker(trimmed)}
	}

	if looksLikeSubHeading(trimmed) {
		return Line{Kind: SubHeading, Text: trimmed}
	}

	return Line{Kind: Prose, Text: trimmed}
}

// looksLikeSubHeading applies the structural sub-heading test: an
// uppercase-initial line carrying a date-like token, or a line opening with
// short tokens and a separator.
func looksLikeSubHeading(trimmed string) bool {
	first := rune(trimmed[0])
	if first >= 'A' && first <= 'Z' && yearPattern.MatchString(trimmed) {
		return true
	}
	return separatorPattern.MatchString(trimmed)
}

// leadingMarker returns the bullet marker the line starts with, or "".
func leadingMarker(trimmed string) string {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return marker
		}
	}
	return ""
}

// stripMarker removes a leading bullet marker and surrounding space so the
// renderer can re-normalize to its canonical glyph.
func stripMarker(trimmed string) string {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):])
		}
	}
	return trimmed
}
