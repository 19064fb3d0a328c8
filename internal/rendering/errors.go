// Package rendering produces downloadable resume documents (PDF, DOCX, plain
// text) from a segmented resume, a template, and resolved customization.
package rendering

import "fmt"

// RenderError represents a failure producing the output byte stream. Content
// never causes one; only encoding the final artifact can fail.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
