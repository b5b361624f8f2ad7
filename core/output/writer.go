// Package output handles where converted documents end up. Without an
// output directory, bytes go to standard output; with one, the file is
// named after the input document's stem plus the formatter's extension.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to stdout or to files under a directory.
type Writer struct {
	// OutputDir is the target directory. Empty means stdout.
	OutputDir string
	// Stdout is the stream used when OutputDir is empty; defaults to
	// os.Stdout.
	Stdout io.Writer
}

// New creates a Writer. An empty outputDir selects stdout mode; otherwise
// the directory is created if missing.
func New(outputDir string) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, Stdout: os.Stdout}, nil
}

// Write delivers data. It returns the written file's path, or "-" in stdout
// mode.
func (w *Writer) Write(inputPath string, data []byte, ext string) (string, error) {
	if w.OutputDir == "" {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "-", nil
	}

	path := filepath.Join(w.OutputDir, stem(inputPath)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// stem returns the input's base name without its extension, "out" as a
// last resort.
func stem(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "out"
	}
	return base
}
