package rendering

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resume-forge/internal/classification"
	"github.com/jonathan/resume-forge/internal/types"
)

var white = types.RGB{R: 255, G: 255, B: 255}

// RenderPDF produces a paginated fixed-layout PDF from a segmented resume.
// The template is expected to be resolved (customization already applied via
// templates.Apply); cust additionally controls spacing and section toggles.
//
// Rendering is total over content: an entirely empty resume still yields a
// valid document containing only the template's header chrome.
func RenderPDF(seg types.SegmentedResume, contact types.ContactInfo, tmpl types.Template, cust types.Customization) (types.RenderedDocument, error) {
	spacing := tmpl.Spacing
	if cust.Spacing != "" {
		spacing = cust.Spacing
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	b := &pdfBuilder{
		doc:   doc,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
		tmpl:  tmpl,
		font:  pdfFontFamily(tmpl.FontFamily),
		lh:    lineHeight(spacing),
		left:  marginLeft,
		right: pageWidth - marginRight,
		y:     marginTop,
	}

	if tmpl.Layout.HasSidebar() {
		b.drawSidebar(seg, contact)
	} else {
		b.drawHeader(contact)
	}

	for _, name := range types.SectionOrder {
		if !seg.HasContent(name) {
			continue
		}
		if name == types.SectionCertifications && !cust.ShowCertifications {
			continue
		}
		// Sidebar layouts render skills inside the sidebar, not the main flow.
		if name == types.SectionSkills && tmpl.Layout.HasSidebar() {
			continue
		}
		b.drawSection(seg, name)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return types.RenderedDocument{}, &RenderError{Message: "failed to encode PDF", Cause: err}
	}

	return types.RenderedDocument{
		Filename: DeriveFilename(contact.Name, "pdf"),
		MIMEType: types.MIMEPDF,
		Data:     buf.Bytes(),
	}, nil
}

// pdfBuilder holds the drawing state for one render call: the output
// document, the main-column bounds, and the vertical cursor. Nothing here
// outlives the call.
type pdfBuilder struct {
	doc  *gofpdf.Fpdf
	tr   func(string) string
	tmpl types.Template
	font string
	lh   float64

	left  float64
	right float64
	y     float64
}

func (b *pdfBuilder) width() float64 {
	return b.right - b.left
}

// ensureRoom starts a new page when less than room points remain. The main
// cursor resets to the top margin; sidebars and header bands are first-page
// decorations and are not repainted.
func (b *pdfBuilder) ensureRoom(room float64) {
	if b.y+room > pageHeight-marginBottom {
		b.doc.AddPage()
		b.y = marginTop
	}
}

func (b *pdfBuilder) setFont(style string, size float64, color types.RGB) {
	b.doc.SetFont(b.font, style, size)
	b.doc.SetTextColor(color.R, color.G, color.B)
}

// drawCentered draws text horizontally centered on the page at the current
// cursor. Font must already be set.
func (b *pdfBuilder) drawCentered(text string) {
	translated := b.tr(text)
	x := (pageWidth - b.doc.GetStringWidth(translated)) / 2
	b.doc.Text(x, b.y, translated)
}

// wrap splits text into lines fitting the given width under the current font.
func (b *pdfBuilder) wrap(text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if b.doc.GetStringWidth(b.tr(candidate)) > width {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

// writeText draws a block of text at the given indent inside the main
// column, wrapping and paginating as needed.
func (b *pdfBuilder) writeText(indent float64, text, style string, size float64, color types.RGB) {
	b.setFont(style, size, color)
	for _, line := range b.wrap(text, b.width()-indent) {
		b.ensureRoom(lineBreakRoom)
		b.doc.Text(b.left+indent, b.y, b.tr(line))
		b.y += b.lh
	}
}

// drawHeader draws the non-sidebar header variants: a centered name and
// contact block for single-column layouts, or a full-width colored band with
// white text for header-band layouts.
func (b *pdfBuilder) drawHeader(contact types.ContactInfo) {
	colors := b.tmpl.Colors
	fields := contactFields(contact)

	if b.tmpl.Layout == types.LayoutHeaderBand {
		b.doc.SetFillColor(colors.Primary.R, colors.Primary.G, colors.Primary.B)
		b.doc.Rect(0, 0, pageWidth, headerBandHeight, "F")

		if contact.Name != "" {
			b.setFont("B", 20, white)
			b.doc.Text(marginLeft, 44, b.tr(contact.Name))
		}
		if len(fields) > 0 {
			b.setFont("", 10, white)
			b.doc.Text(marginLeft, 66, b.tr(strings.Join(fields, " | ")))
		}
		b.y = headerBandHeight + b.lh*1.5
		return
	}

	if contact.Name != "" {
		b.setFont("B", 20, colors.Primary)
		b.drawCentered(contact.Name)
		b.y += b.lh * 1.6
	}
	if len(fields) > 0 {
		b.setFont("", 10, colors.Muted)
		b.drawCentered(strings.Join(fields, " | "))
		b.y += b.lh * 1.4
	}
}

// drawSidebar paints the sidebar column in a single pass with its own
// cursor: a filled band down one edge holding the name, contact fields, and
// the skills section. The main-column bounds are then narrowed to the
// remaining two thirds.
func (b *pdfBuilder) drawSidebar(seg types.SegmentedResume, contact types.ContactInfo) {
	colors := b.tmpl.Colors

	x0 := 0.0
	if b.tmpl.Layout == types.LayoutSidebarRight {
		x0 = pageWidth - sidebarWidth
	}
	b.doc.SetFillColor(colors.Secondary.R, colors.Secondary.G, colors.Secondary.B)
	b.doc.Rect(x0, 0, sidebarWidth, pageHeight, "F")

	sx := x0 + sidebarPad
	sy := marginTop

	if contact.Name != "" {
		b.setFont("B", 16, white)
		for _, line := range b.wrap(contact.Name, sidebarWidth-2*sidebarPad) {
			b.doc.Text(sx, sy, b.tr(line))
			sy += b.lh * 1.4
		}
		sy += b.lh * 0.4
	}
	b.setFont("", 9, white)
	for _, field := range contactFields(contact) {
		b.doc.Text(sx, sy, b.tr(field))
		sy += b.lh
	}

	if seg.HasContent(types.SectionSkills) {
		sy += b.lh
		b.setFont("B", 11, white)
		b.doc.Text(sx, sy, "SKILLS")
		sy += b.lh

		b.setFont("", 9, white)
		for _, line := range sectionLines(seg, types.SectionSkills) {
			if sy > pageHeight-marginBottom {
				break
			}
			if line.Kind == classification.Spacer {
				sy += b.lh / 2
				continue
			}
			for _, wrapped := range b.wrap(bulletGlyph+" "+line.Text, sidebarWidth-2*sidebarPad) {
				b.doc.Text(sx, sy, b.tr(wrapped))
				sy += b.lh
			}
		}
	}

	if b.tmpl.Layout == types.LayoutSidebarLeft {
		b.left = sidebarWidth + sidebarPad*1.5
		b.right = pageWidth - marginRight
	} else {
		b.left = marginLeft
		b.right = pageWidth - sidebarWidth - sidebarPad*1.5
	}
}

// drawSection emits a section heading with its template decoration, then the
// section's classified content lines.
func (b *pdfBuilder) drawSection(seg types.SegmentedResume, name types.SectionName) {
	colors := b.tmpl.Colors
	b.ensureRoom(sectionBreakRoom)

	heading := strings.ToUpper(string(name))
	deco := HeadingDecoration(b.tmpl.Layout)
	if deco.Band {
		b.doc.SetFillColor(colors.Primary.R, colors.Primary.G, colors.Primary.B)
		b.doc.Rect(b.left, b.y-10, b.width(), 15, "F")
		b.setFont("B", 12, white)
		b.doc.Text(b.left+4, b.y, heading)
	} else {
		b.setFont("B", 12, colors.Primary)
		b.doc.Text(b.left, b.y, heading)
		if deco.Underline {
			b.doc.SetDrawColor(colors.Accent.R, colors.Accent.G, colors.Accent.B)
			b.doc.SetLineWidth(0.8)
			b.doc.Line(b.left, b.y+3, b.right, b.y+3)
		}
	}
	b.y += b.lh * 1.4

	for _, line := range sectionLines(seg, name) {
		switch line.Kind {
		case classification.Spacer:
			b.y += b.lh / 2
		case classification.BulletItem:
			b.writeText(bulletIndent, bulletGlyph+" "+line.Text, "", 10, colors.Text)
		case classification.SubHeading:
			b.writeText(0, line.Text, "B", 10.5, colors.Text)
		default:
			b.writeText(0, line.Text, "", 10, colors.Text)
		}
	}

	b.y += b.lh * 0.6
}
