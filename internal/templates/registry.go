package templates

import "github.com/jonathan/resume-forge/internal/types"

// Color palettes selectable through customization. "slate" is the default.
var colorSchemes = map[string]types.ColorScheme{
	"midnight": {
		ID:        "midnight",
		Primary:   types.RGB{R: 23, G: 37, B: 84},
		Secondary: types.RGB{R: 30, G: 58, B: 138},
		Accent:    types.RGB{R: 59, G: 130, B: 246},
		Text:      types.RGB{R: 17, G: 24, B: 39},
		Muted:     types.RGB{R: 107, G: 114, B: 128},
	},
	"slate": {
		ID:        "slate",
		Primary:   types.RGB{R: 51, G: 65, B: 85},
		Secondary: types.RGB{R: 71, G: 85, B: 105},
		Accent:    types.RGB{R: 100, G: 116, B: 139},
		Text:      types.RGB{R: 15, G: 23, B: 42},
		Muted:     types.RGB{R: 148, G: 163, B: 184},
	},
	"burgundy": {
		ID:        "burgundy",
		Primary:   types.RGB{R: 127, G: 29, B: 29},
		Secondary: types.RGB{R: 153, G: 27, B: 27},
		Accent:    types.RGB{R: 220, G: 38, B: 38},
		Text:      types.RGB{R: 28, G: 25, B: 23},
		Muted:     types.RGB{R: 120, G: 113, B: 108},
	},
	"forest": {
		ID:        "forest",
		Primary:   types.RGB{R: 20, G: 83, B: 45},
		Secondary: types.RGB{R: 22, G: 101, B: 52},
		Accent:    types.RGB{R: 34, G: 197, B: 94},
		Text:      types.RGB{R: 20, G: 28, B: 21},
		Muted:     types.RGB{R: 113, G: 128, B: 115},
	},
}

// registry is the fixed template catalog, in UI display order. Defined at
// process start and never mutated.
var registry = []types.Template{
	{
		ID:          "classic",
		DisplayName: "Classic",
		Description: "Traditional single-column layout with centered contact block.",
		Layout:      types.LayoutSingleColumn,
		Colors:      colorSchemes["slate"],
		FontFamily:  "arial",
		Spacing:     types.SpacingComfortable,
	},
	{
		ID:          "executive",
		DisplayName: "Executive",
		Description: "Full-width colored header band with white name and contact text.",
		Layout:      types.LayoutHeaderBand,
		Colors:      colorSchemes["midnight"],
		FontFamily:  "times",
		Spacing:     types.SpacingComfortable,
	},
	{
		ID:          "horizon",
		DisplayName: "Horizon",
		Description: "Left sidebar carrying contact details and skills beside the main flow.",
		Layout:      types.LayoutSidebarLeft,
		Colors:      colorSchemes["forest"],
		FontFamily:  "arial",
		Spacing:     types.SpacingComfortable,
	},
	{
		ID:          "meridian",
		DisplayName: "Meridian",
		Description: "Right sidebar variant with accented section headings.",
		Layout:      types.LayoutSidebarRight,
		Colors:      colorSchemes["burgundy"],
		FontFamily:  "arial",
		Spacing:     types.SpacingCompact,
	},
}

// List returns the template catalog in stable display order. The returned
// slice is a copy; callers cannot mutate the registry.
func List() []types.Template {
	out := make([]types.Template, len(registry))
	copy(out, registry)
	return out
}

// Resolve returns the template registered under id.
func Resolve(id string) (types.Template, error) {
	for _, tmpl := range registry {
		if tmpl.ID == id {
			return tmpl, nil
		}
	}
	return types.Template{}, &UnknownTemplateError{ID: id}
}

// ResolveColorScheme returns the palette registered under id.
func ResolveColorScheme(id string) (types.ColorScheme, bool) {
	scheme, ok := colorSchemes[id]
	return scheme, ok
}
