// Package templates provides the static catalog of visual resume templates
// and resolution of user customization overrides.
package templates

import "fmt"

// UnknownTemplateError indicates a requested template id is not registered.
// It is fatal to the render call; no template is silently substituted.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %q", e.ID)
}

// InvalidCustomizationError indicates customization overrides failed schema
// or value validation. Rejected at resolution time, never at render time.
type InvalidCustomizationError struct {
	Message string
	Cause   error
}

func (e *InvalidCustomizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid customization: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid customization: %s", e.Message)
}

func (e *InvalidCustomizationError) Unwrap() error {
	return e.Cause
}
