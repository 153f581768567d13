package preview

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/adapters/driven/encoding/yamldoc"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/services"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	builder := services.NewBuilderService(
		yamldoc.NewEncoder(yamldoc.DefaultOptions()), nil, services.BuilderOptions{},
	)
	_, err := builder.AddProtein(domain.ProteinForm{Copies: 1, IDs: "A", Sequence: "MKV"})
	require.NoError(t, err)
	return NewView(nil, builder)
}

func TestView_InitRendersDocument(t *testing.T) {
	v := newTestView(t)
	v.SetDimensions(80, 40)

	msg, ok := v.Init()().(messages.DocumentRendered)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	v.Update(msg)

	assert.Contains(t, v.Content(), "sequence: MKV")
	assert.Contains(t, v.View(), "Preview (not saved)")
	assert.Contains(t, v.View(), "id: [A]")
}

func TestView_RenderWithoutBuilder(t *testing.T) {
	v := NewView(nil, nil)

	msg := v.Init()().(messages.DocumentRendered)

	require.Error(t, msg.Err)
	v.Update(msg)
	assert.Contains(t, v.View(), "builder service not available")
}

func TestView_RenderWithoutEncoder(t *testing.T) {
	v := NewView(nil, services.NewBuilderService(nil, nil, services.BuilderOptions{}))

	msg := v.Init()().(messages.DocumentRendered)

	assert.ErrorIs(t, msg.Err, services.ErrNoEncoder)
}

func TestView_DocumentGenerated(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(80, 40)

	v.Update(messages.DocumentGenerated{Document: &domain.GeneratedDocument{
		Path:    "config.yaml",
		Content: []byte("version: 1\n"),
	}})

	assert.Equal(t, "config.yaml", v.SavedPath())
	assert.Contains(t, v.View(), "Saved to config.yaml")
	assert.Contains(t, v.View(), "version: 1")
}

func TestView_DocumentGeneratedError(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(messages.DocumentGenerated{Err: errors.New("disk full")})

	assert.Equal(t, "", v.SavedPath())
}

func TestView_SetDimensions(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, v.viewport.Width)
	assert.Equal(t, 22, v.viewport.Height)

	v.SetDimensions(40, 5)
	assert.Equal(t, 3, v.viewport.Height)
}
