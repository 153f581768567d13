// Package output writes rendered documents to the local filesystem.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/foldcfg/internal/core/ports/driven"
)

// Ensure FileWriter implements the interface.
var _ driven.DocumentWriter = (*FileWriter)(nil)

// FileWriter replaces the target file on every write.
type FileWriter struct {
	// Perm is the mode used when the file is created.
	Perm os.FileMode
}

// NewFileWriter creates a writer that creates files with mode 0644.
func NewFileWriter() *FileWriter {
	return &FileWriter{Perm: 0o644}
}

// Write truncates path and writes data. Missing parent directories are created.
func (w *FileWriter) Write(path string, data []byte) (err error) {
	if path == "" {
		return errors.New("output path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.Perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}
