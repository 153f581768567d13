package ligand

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/services"
)

func newTestView() (*View, *services.BuilderService) {
	builder := services.NewBuilderService(nil, nil, services.BuilderOptions{})
	return NewView(nil, builder), builder
}

func press(v *View, kt tea.KeyType) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: kt})
	return cmd
}

func TestNewView(t *testing.T) {
	v, _ := newTestView()

	require.NotNil(t, v)
	assert.Equal(t, "CCD", v.kind.Value())
	assert.Equal(t, 2, v.kind.Len())
	assert.True(t, v.copies.Focused())
}

func TestView_SubmitAddsLigand(t *testing.T) {
	tests := []struct {
		name     string
		kindKeys int
		value    string
		wantKind domain.LigandKind
	}{
		{"ccd", 0, "ATP", domain.LigandKindCCD},
		{"smiles", 1, "CC(=O)O", domain.LigandKindSMILES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, builder := newTestView()
			v.ids.SetValue("L1")
			v.value.SetValue(tt.value)
			press(v, tea.KeyTab)
			press(v, tea.KeyTab)
			for i := 0; i < tt.kindKeys; i++ {
				press(v, tea.KeyRight)
			}

			msg := press(v, tea.KeyEnter)().(messages.LigandAdded)

			require.NoError(t, msg.Err)
			assert.Equal(t, tt.wantKind, msg.Ligand.Kind)
			assert.Equal(t, tt.value, msg.Ligand.Value)
			require.Len(t, builder.BinderOptions(), 1)
			assert.Equal(t, "L1", builder.BinderOptions()[0].ID)

			v.Update(msg)
			assert.Equal(t, "", v.ids.Value())
			assert.Equal(t, "", v.value.Value())
		})
	}
}

func TestView_SubmitMissingValue(t *testing.T) {
	v, builder := newTestView()
	v.ids.SetValue("L1")

	msg := press(v, tea.KeyEnter)().(messages.LigandAdded)

	assert.ErrorIs(t, msg.Err, domain.ErrMissingField)
	v.Update(msg)
	assert.Equal(t, "L1", v.ids.Value())
	assert.Zero(t, builder.Snapshot().Registry.LigandCount())
}

func TestView_Form(t *testing.T) {
	v, _ := newTestView()
	v.ids.SetValue("L1, L2")
	v.value.SetValue("ATP")
	v.copies.Select("2")

	assert.Equal(t, domain.LigandForm{Copies: 2, IDs: "L1, L2", Kind: "CCD", Value: "ATP"}, v.Form())
}

func TestView_View(t *testing.T) {
	v, _ := newTestView()
	v.SetDimensions(100, 40)

	view := v.View()

	assert.Contains(t, view, "Add ligand")
	assert.Contains(t, view, "CCD")
}
