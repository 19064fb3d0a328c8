package rendering

import "github.com/jonathan/resume-forge/internal/types"

// RenderPlainText exports the untouched raw text as a downloadable file. It
// exists so all three export paths share one filename derivation.
func RenderPlainText(rawText, contactName string) types.RenderedDocument {
	return types.RenderedDocument{
		Filename: DeriveFilename(contactName, "txt"),
		MIMEType: types.MIMEPlainText,
		Data:     []byte(rawText),
	}
}
