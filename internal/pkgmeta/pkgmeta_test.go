package pkgmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{
		"name": "tab-wrangler",
		"version": "1.4.0-beta.2",
		"description": "Wrangles your tabs",
		"shortName": "Wrangler",
		"private": true,
		"scripts": {"build": "extforge build"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte(content), 0644))

	meta, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "tab-wrangler", meta.Name)
	assert.Equal(t, "1.4.0-beta.2", meta.Version)
	assert.Equal(t, "Wrangles your tabs", meta.Description)
	assert.Equal(t, "Wrangler", meta.ShortName)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(t.TempDir())

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0644))

	_, err := LoadFile(path)

	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFile_MissingFieldsAreNotItsProblem(t *testing.T) {
	// Field presence is validated by the assembler, not the reader
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "bare"}`), 0644))

	meta, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "bare", meta.Name)
	assert.Empty(t, meta.Version)
	assert.Empty(t, meta.Description)
}
