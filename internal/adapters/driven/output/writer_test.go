package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := NewFileWriter().Write(path, []byte("version: 1\n"))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestFileWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	w := NewFileWriter()

	require.NoError(t, w.Write(path, []byte("a much longer first document\n")))
	require.NoError(t, w.Write(path, []byte("short\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
}

func TestFileWriter_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "today", "config.yaml")

	err := NewFileWriter().Write(path, []byte("x"))

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestFileWriter_EmptyPath(t *testing.T) {
	err := NewFileWriter().Write("", []byte("x"))

	assert.Error(t, err)
}

func TestFileWriter_PathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := NewFileWriter().Write(dir, []byte("x"))

	assert.Error(t, err)
}
