//nolint:revive // types is a standard Go package name pattern
package types

// RenderedDocument is the output of one render call: the produced bytes, a
// derived filename, and the MIME type a downstream collaborator should serve
// it with. The subsystem never persists these itself.
type RenderedDocument struct {
	Filename string
	MIMEType string
	Data     []byte
}

// MIME types for the three export paths.
const (
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPlainText = "text/plain"
)
