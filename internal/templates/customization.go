package templates

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
	rootschemas "github.com/jonathan/resume-forge/schemas"
)

var validate = validator.New()

// DefaultCustomization returns the documented defaults: slate palette, arial,
// comfortable spacing, certifications shown, languages and volunteer hidden.
func DefaultCustomization() types.Customization {
	return types.Customization{
		ColorSchemeID:      "slate",
		FontFamilyID:       "arial",
		Spacing:            types.SpacingComfortable,
		ShowCertifications: true,
		ShowLanguages:      false,
		ShowVolunteer:      false,
	}
}

// ResolveCustomization merges user overrides, given as a JSON object, onto
// the defaults. Empty input yields the defaults unchanged. Unknown override
// keys and out-of-range values are rejected with an
// InvalidCustomizationError, never ignored.
func ResolveCustomization(overrides []byte) (types.Customization, error) {
	resolved := DefaultCustomization()
	if len(bytes.TrimSpace(overrides)) == 0 {
		return resolved, nil
	}

	if err := schemas.ValidateBytes(rootschemas.CustomizationSchema, overrides); err != nil {
		return types.Customization{}, &InvalidCustomizationError{
			Message: "overrides rejected by schema",
			Cause:   err,
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(overrides))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&resolved); err != nil {
		return types.Customization{}, &InvalidCustomizationError{
			Message: "overrides are not a valid customization object",
			Cause:   err,
		}
	}

	if err := validate.Struct(resolved); err != nil {
		return types.Customization{}, &InvalidCustomizationError{
			Message: "overrides failed value validation",
			Cause:   err,
		}
	}

	if _, ok := ResolveColorScheme(resolved.ColorSchemeID); !ok {
		return types.Customization{}, &InvalidCustomizationError{
			Message: fmt.Sprintf("unknown color scheme %q", resolved.ColorSchemeID),
		}
	}

	return resolved, nil
}

// Apply returns a copy of the template with the customization's palette,
// font, and spacing substituted. The registry entry itself is never touched.
func Apply(tmpl types.Template, cust types.Customization) types.Template {
	if scheme, ok := ResolveColorScheme(cust.ColorSchemeID); ok {
		tmpl.Colors = scheme
	}
	if cust.FontFamilyID != "" {
		tmpl.FontFamily = cust.FontFamilyID
	}
	if cust.Spacing != "" {
		tmpl.Spacing = cust.Spacing
	}
	return tmpl
}
