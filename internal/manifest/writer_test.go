package manifest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() Document {
	return Document{
		"manifest_version": 3,
		"name":             "Tab Wrangler",
		"version":          "1.4.0",
		"background":       map[string]any{"service_worker": "background.js"},
		"content_scripts": []any{
			map[string]any{"matches": []any{"https://*/*"}, "js": []string{"inject.js"}},
		},
	}
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter(WriterOptions{})

	assert.Equal(t, filepath.Join("./dist", "manifest.json"), w.Path())
	assert.False(t, w.production)
}

func TestWriter_Write_PrettyRoundTrip(t *testing.T) {
	outDir := t.TempDir()
	w := NewWriter(WriterOptions{OutDir: outDir})

	doc := testDocument()
	require.NoError(t, w.Write(context.Background(), doc))

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"name\""), "expected 2-space indented output")

	// Parsing the written file yields the same structure that was assembled
	var parsed Document
	require.NoError(t, json.Unmarshal(data, &parsed))

	expected, err := json.Marshal(doc)
	require.NoError(t, err)
	actual, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(actual))
}

func TestWriter_Write_ProductionCompact(t *testing.T) {
	outDir := t.TempDir()
	w := NewWriter(WriterOptions{OutDir: outDir, Production: true})

	require.NoError(t, w.Write(context.Background(), testDocument()))

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n")
}

func TestWriter_Write_CreatesOutDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "dist")
	w := NewWriter(WriterOptions{OutDir: outDir})

	require.NoError(t, w.Write(context.Background(), testDocument()))

	_, err := os.Stat(filepath.Join(outDir, "manifest.json"))
	assert.NoError(t, err)
}

func TestWriter_Write_PropagatesFilesystemError(t *testing.T) {
	// Using a regular file as the output directory forces MkdirAll to fail
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "dist")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	w := NewWriter(WriterOptions{OutDir: blocker})
	err := w.Write(context.Background(), testDocument())

	assert.Error(t, err)
}

func TestWriter_Write_CanceledContext(t *testing.T) {
	outDir := t.TempDir()
	w := NewWriter(WriterOptions{OutDir: outDir})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Write(ctx, testDocument())
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(w.Path())
	assert.True(t, os.IsNotExist(statErr), "no partial manifest should be written")
}
