package mcp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/adapters/driven/encoding/yamldoc"
	"github.com/custodia-labs/foldcfg/internal/core/services"
)

// memWriter keeps written documents in memory.
type memWriter struct {
	mu    sync.Mutex
	files map[string]string
}

func (w *memWriter) Write(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string]string)
	}
	w.files[path] = string(data)
	return nil
}

func newTestServer(t *testing.T) (*Server, *memWriter) {
	t.Helper()
	w := &memWriter{}
	builder := services.NewBuilderService(
		yamldoc.NewEncoder(yamldoc.DefaultOptions()),
		w,
		services.BuilderOptions{OutputPath: "out/config.yaml"},
	)
	server, err := NewServer(&Ports{Builder: builder})
	require.NoError(t, err)
	return server, w
}

func TestNewServer(t *testing.T) {
	t.Run("nil builder returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingBuilderService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		_, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingBuilderService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingBuilderService)

	builder := services.NewBuilderService(nil, nil, services.BuilderOptions{})
	assert.NoError(t, (&Ports{Builder: builder}).Validate())
}
