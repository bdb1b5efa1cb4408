// Package fs provides file-based export of serialized decks.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/selkocards"
)

// Ensure Exporter implements selkocards.Exporter at compile time.
var _ selkocards.Exporter = (*Exporter)(nil)

// Exporter writes decks as UTF-8 text files into a directory.
// Files are written to a temporary name first and renamed into place, so a
// failed export never leaves a truncated deck behind.
type Exporter struct {
	baseDir string
}

// NewExporter creates an Exporter writing into baseDir.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// Export writes payload to baseDir/name and returns the file path.
// Returns EINVALID if name is empty or escapes baseDir.
func (e *Exporter) Export(ctx context.Context, name string, payload string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", selkocards.Errorf(selkocards.EINVALID, "invalid export file name %q", name)
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return "", err
	}

	final := filepath.Join(e.baseDir, name)
	tmp, err := os.CreateTemp(e.baseDir, name+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, payload); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", err
	}

	return final, nil
}

// Ensure WriterExporter implements selkocards.Exporter at compile time.
var _ selkocards.Exporter = (*WriterExporter)(nil)

// WriterExporter writes decks to a stream such as stdout.
type WriterExporter struct {
	w io.Writer
}

// NewWriterExporter creates an exporter writing every payload to w.
func NewWriterExporter(w io.Writer) *WriterExporter {
	return &WriterExporter{w: w}
}

// Export writes payload to the stream. The returned location is "-".
func (e *WriterExporter) Export(ctx context.Context, name string, payload string) (string, error) {
	if _, err := io.WriteString(e.w, payload); err != nil {
		return "", err
	}
	if !strings.HasSuffix(payload, "\n") {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return "", err
		}
	}
	return "-", nil
}
