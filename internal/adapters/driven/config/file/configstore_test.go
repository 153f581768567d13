package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".foldcfg")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.path", "config.yaml"))

	val, ok := store.Get("output.path")
	assert.True(t, ok)
	assert.Equal(t, "config.yaml", val)
	assert.Equal(t, "config.yaml", store.GetString("output.path"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("form.max_copies", 6))
	assert.Equal(t, 6, store.GetInt("form.max_copies"))

	require.NoError(t, store.Set("output.path", "x"))
	assert.Equal(t, 0, store.GetInt("output.path"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.path", "run/config.yaml"))
	require.NoError(t, store.Set("form.max_copies", 4))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[output]")
	assert.Contains(t, string(raw), "[form]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "run/config.yaml", reloaded.GetString("output.path"))
	// TOML integers come back as int64.
	assert.Equal(t, 4, reloaded.GetInt("form.max_copies"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[output]\npath = \"boltz/in.yaml\"\n\n[document]\nversion = 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "boltz/in.yaml", store.GetString("output.path"))
	assert.Equal(t, 1, store.GetInt("document.version"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0o600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"output": map[string]any{"path": "a.yaml"},
		"top":    1,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"output.path": "a.yaml", "top": 1}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"output.path":      "a.yaml",
		"form.max_copies":  3,
		"document.version": 1,
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"output":   map[string]any{"path": "a.yaml"},
		"form":     map[string]any{"max_copies": 3},
		"document": map[string]any{"version": 1},
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}

func TestNestMap_ScalarWinsOverTable(t *testing.T) {
	nested := nestMap(map[string]any{"a": 1, "a.b": 2})

	assert.Equal(t, map[string]any{"a": 1}, nested)
}
