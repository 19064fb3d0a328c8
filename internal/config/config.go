// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input         string `json:"input,omitempty"`         // Path to the raw resume text file
	Customization string `json:"customization,omitempty"` // Path to customization overrides JSON
	OutDir        string `json:"out_dir,omitempty"`       // Directory rendered artifacts are written to

	// Rendering
	Template string   `json:"template,omitempty"` // Template id (classic, executive, horizon, meridian)
	Formats  []string `json:"formats,omitempty"`  // Output formats: pdf, docx, txt

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed segmentation/render information
}

// validFormats are the output formats the render pipeline supports.
var validFormats = map[string]bool{
	"pdf":  true,
	"docx": true,
	"txt":  true,
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	for _, format := range c.Formats {
		if !validFormats[format] {
			return fmt.Errorf("config error: unknown format %q (want pdf, docx, or txt)", format)
		}
	}
	return nil
}

// Merge overlays non-zero flag values onto the config, flags winning.
func (c *Config) Merge(input, template, customization, outDir string, formats []string, verbose bool) {
	if input != "" {
		c.Input = input
	}
	if template != "" {
		c.Template = template
	}
	if customization != "" {
		c.Customization = customization
	}
	if outDir != "" {
		c.OutDir = outDir
	}
	if len(formats) > 0 {
		c.Formats = formats
	}
	if verbose {
		c.Verbose = true
	}
}
