//nolint:revive // types is a standard Go package name pattern
package types

// LayoutKind selects the structural layout a template renders with.
type LayoutKind string

// Supported structural layouts.
const (
	LayoutSingleColumn LayoutKind = "single-column"
	LayoutHeaderBand   LayoutKind = "header-band"
	LayoutSidebarLeft  LayoutKind = "sidebar-left"
	LayoutSidebarRight LayoutKind = "sidebar-right"
)

// HasSidebar reports whether the layout reserves a sidebar column.
func (k LayoutKind) HasSidebar() bool {
	return k == LayoutSidebarLeft || k == LayoutSidebarRight
}

// ColorScheme is an RGB palette applied uniformly to a rendered document.
type ColorScheme struct {
	ID        string `json:"id"`
	Primary   RGB    `json:"primary"`
	Secondary RGB    `json:"secondary"`
	Accent    RGB    `json:"accent"`
	Text      RGB    `json:"text"`
	Muted     RGB    `json:"muted"`
}

// RGB is a 24-bit color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Template is a named visual layout plus color/font preset. Templates are
// defined at process start and never mutated at runtime.
type Template struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Description string      `json:"description"`
	Layout      LayoutKind  `json:"layout"`
	Colors      ColorScheme `json:"colors"`
	FontFamily  string      `json:"font_family"`
	Spacing     Spacing     `json:"spacing"`
}

// Spacing selects the vertical density of rendered output.
type Spacing string

// Spacing values.
const (
	SpacingCompact     Spacing = "compact"
	SpacingComfortable Spacing = "comfortable"
)

// Customization holds the user-overridable subset of template settings.
// Renderers receive a resolved copy and never mutate it.
type Customization struct {
	ColorSchemeID      string  `json:"color_scheme" validate:"required"`
	FontFamilyID       string  `json:"font_family" validate:"required,oneof=arial times courier"`
	Spacing            Spacing `json:"spacing" validate:"required,oneof=compact comfortable"`
	ShowCertifications bool    `json:"show_certifications"`
	ShowLanguages      bool    `json:"show_languages"`
	ShowVolunteer      bool    `json:"show_volunteer"`
}
