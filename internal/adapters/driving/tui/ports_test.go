package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/adapters/driven/encoding/yamldoc"
	"github.com/custodia-labs/foldcfg/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/foldcfg/internal/core/services"
)

// memWriter records written documents instead of touching the filesystem.
type memWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (w *memWriter) Write(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string][]byte)
	}
	w.files[path] = append([]byte(nil), data...)
	return nil
}

func newTestPorts() (*Ports, *memWriter) {
	w := &memWriter{}
	builder := services.NewBuilderService(
		yamldoc.NewEncoder(yamldoc.DefaultOptions()),
		w,
		services.BuilderOptions{OutputPath: "config.yaml"},
	)
	settings := services.NewSettingsService(memory.NewConfigStore())
	return NewPorts(builder, settings), w
}

func TestNewPorts(t *testing.T) {
	ports, _ := newTestPorts()

	require.NotNil(t, ports)
	assert.NotNil(t, ports.Builder)
	assert.NotNil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	ports, _ := newTestPorts()
	assert.NoError(t, ports.Validate())

	ports.Settings = nil
	assert.NoError(t, ports.Validate(), "settings are optional")

	ports.Builder = nil
	assert.ErrorIs(t, ports.Validate(), ErrMissingBuilderService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports
	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
