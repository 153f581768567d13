package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reset restores package state after a test.
func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	reset(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("added %s", "A")
	Info("wrote %d bytes", 12)
	Warn("careful")
	Section("Generate")

	assert.Equal(t,
		"[DEBUG] added A\n[INFO] wrote 12 bytes\n[WARN] careful\n\n=== Generate ===\n",
		buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")

	assert.Zero(t, buf.Len())
}

func TestToFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "foldcfg.log")
	SetVerbose(true)

	closeFn, err := ToFile(path)
	require.NoError(t, err)
	Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] to file\n", string(data))
}

func TestToFile_BadPath(t *testing.T) {
	reset(t)

	_, err := ToFile(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))

	assert.Error(t, err)
}
