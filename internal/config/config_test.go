package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"input": "resume.txt",
		"template": "executive",
		"formats": ["pdf", "docx"],
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Input)
	assert.Equal(t, "executive", cfg.Template)
	assert.Equal(t, []string{"pdf", "docx"}, cfg.Formats)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"input":`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_KnownFormats(t *testing.T) {
	cfg := &Config{Formats: []string{"pdf", "docx", "txt"}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := &Config{Formats: []string{"odt"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odt")
}

func TestMerge_FlagsWin(t *testing.T) {
	cfg := &Config{Input: "from_config.txt", Template: "classic", Formats: []string{"pdf"}}
	cfg.Merge("from_flag.txt", "", "", "out", []string{"docx"}, true)

	assert.Equal(t, "from_flag.txt", cfg.Input)
	assert.Equal(t, "classic", cfg.Template, "empty flag keeps config value")
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, []string{"docx"}, cfg.Formats)
	assert.True(t, cfg.Verbose)
}
