package manifest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// Writer persists assembled manifests under the output directory
type Writer struct {
	outDir     string
	production bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	OutDir string
	// Production selects compact single-line JSON; otherwise the manifest
	// is pretty-printed with two-space indentation
	Production bool
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.OutDir == "" {
		opts.OutDir = "./dist"
	}
	return &Writer{
		outDir:     opts.OutDir,
		production: opts.Production,
	}
}

// Path returns the manifest file path
func (w *Writer) Path() string {
	return filepath.Join(w.outDir, FileName)
}

// Write serializes the document and persists it as manifest.json under the
// output directory. Filesystem failures propagate unchanged.
func (w *Writer) Write(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := w.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(w.Path(), data, 0644)
}

// Marshal serializes the document according to the build mode
func (w *Writer) Marshal(doc Document) ([]byte, error) {
	if w.production {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
