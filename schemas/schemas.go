// Package schemas holds the JSON Schema definitions for data exchanged with
// callers, embedded so validation never depends on the working directory.
package schemas

import _ "embed"

// CustomizationSchema is the JSON Schema for customization overrides.
// additionalProperties is false: unknown override keys are rejected, never
// silently dropped.
//
//go:embed customization.schema.json
var CustomizationSchema []byte
