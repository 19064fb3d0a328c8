package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/classification"
	"github.com/jonathan/resume-forge/internal/types"
)

// Run is a span of uniformly styled text inside a paragraph.
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Color     types.RGB
	SizePt    float64
	White     bool
}

// Paragraph is one block of the structured document model. Bullet paragraphs
// are indented and carry the canonical glyph in their run text; the consuming
// format handles flow and page breaks itself.
type Paragraph struct {
	Runs     []Run
	Centered bool
	Indented bool
	Bullet   bool
	Shaded   bool
	Shade    types.RGB
}

// Document is the block-sequence model the structured renderer produces
// before packing it into OOXML.
type Document struct {
	FontFamily string
	Paragraphs []Paragraph
}

// BuildDocument assembles the structured document model: one title
// paragraph, one contact paragraph, then heading and content paragraphs per
// non-empty canonical section. It shares the line classifier and heading
// decoration mapping with the PDF renderer.
func BuildDocument(seg types.SegmentedResume, contact types.ContactInfo, tmpl types.Template) Document {
	doc := Document{FontFamily: docxFontFamily(tmpl.FontFamily)}
	colors := tmpl.Colors
	centered := tmpl.Layout == types.LayoutSingleColumn

	if contact.Name != "" {
		doc.Paragraphs = append(doc.Paragraphs, Paragraph{
			Centered: centered,
			Runs:     []Run{{Text: contact.Name, Bold: true, Color: colors.Primary, SizePt: 20}},
		})
	}
	if fields := contactFields(contact); len(fields) > 0 {
		doc.Paragraphs = append(doc.Paragraphs, Paragraph{
			Centered: centered,
			Runs:     []Run{{Text: strings.Join(fields, " | "), Color: colors.Muted, SizePt: 10}},
		})
	}

	deco := HeadingDecoration(tmpl.Layout)
	for _, name := range types.SectionOrder {
		if !seg.HasContent(name) {
			continue
		}

		heading := Paragraph{
			Runs: []Run{{
				Text:      strings.ToUpper(string(name)),
				Bold:      true,
				Underline: deco.Underline,
				Color:     colors.Primary,
				SizePt:    12,
				White:     deco.Band,
			}},
		}
		if deco.Band {
			heading.Shaded = true
			heading.Shade = colors.Primary
		}
		doc.Paragraphs = append(doc.Paragraphs, heading)

		for _, line := range sectionLines(seg, name) {
			switch line.Kind {
			case classification.Spacer:
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{})
			case classification.BulletItem:
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{
					Indented: true,
					Bullet:   true,
					Runs:     []Run{{Text: bulletGlyph + " " + line.Text, Color: colors.Text, SizePt: 10}},
				})
			case classification.SubHeading:
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{
					Runs: []Run{{Text: line.Text, Bold: true, Color: colors.Text, SizePt: 10.5}},
				})
			default:
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{
					Runs: []Run{{Text: line.Text, Color: colors.Text, SizePt: 10}},
				})
			}
		}
	}

	return doc
}

// RenderDOCX produces a flow-layout DOCX with the same section ordering and
// styling family as the PDF renderer.
func RenderDOCX(seg types.SegmentedResume, contact types.ContactInfo, tmpl types.Template) (types.RenderedDocument, error) {
	doc := BuildDocument(seg, contact, tmpl)

	data, err := packDOCX(doc)
	if err != nil {
		return types.RenderedDocument{}, &RenderError{Message: "failed to package DOCX", Cause: err}
	}

	return types.RenderedDocument{
		Filename: DeriveFilename(contact.Name, "docx"),
		MIMEType: types.MIMEDocx,
		Data:     data,
	}, nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// packDOCX writes the minimal OOXML package: content types, package
// relationships, and the main document part.
func packDOCX(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(doc)},
	}
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// documentXML serializes the document model to WordprocessingML with direct
// run formatting; no styles part is needed.
func documentXML(doc Document) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, para := range doc.Paragraphs {
		writeParagraphXML(&sb, doc.FontFamily, para)
	}

	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraphXML(sb *strings.Builder, font string, para Paragraph) {
	sb.WriteString("<w:p>")

	if para.Centered || para.Indented || para.Shaded {
		sb.WriteString("<w:pPr>")
		if para.Centered {
			sb.WriteString(`<w:jc w:val="center"/>`)
		}
		if para.Indented {
			sb.WriteString(`<w:ind w:left="360"/>`)
		}
		if para.Shaded {
			fmt.Fprintf(sb, `<w:shd w:val="clear" w:fill="%s"/>`, hexColor(para.Shade))
		}
		sb.WriteString("</w:pPr>")
	}

	for _, run := range para.Runs {
		sb.WriteString("<w:r><w:rPr>")
		fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, font, font)
		if run.Bold {
			sb.WriteString("<w:b/>")
		}
		if run.Underline {
			sb.WriteString(`<w:u w:val="single"/>`)
		}
		color := run.Color
		if run.White {
			color = white
		}
		fmt.Fprintf(sb, `<w:color w:val="%s"/>`, hexColor(color))
		if run.SizePt > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, int(run.SizePt*2))
		}
		sb.WriteString("</w:rPr>")
		fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(run.Text))
		sb.WriteString("</w:r>")
	}

	sb.WriteString("</w:p>")
}

func hexColor(c types.RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
