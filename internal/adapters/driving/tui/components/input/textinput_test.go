package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "IDs", "A, B")

	require.NotNil(t, field)
	assert.Equal(t, "IDs", field.Label())
	assert.Equal(t, "", field.Value())
	assert.False(t, field.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	field := NewField(nil, "IDs", "")

	require.NotNil(t, field)
	assert.NotNil(t, field.styles)
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewField(nil, "IDs", "").Init())
}

func TestField_UpdateWhenFocused(t *testing.T) {
	field := NewField(nil, "IDs", "")
	field.Focus()

	updated, _ := field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}})

	assert.Equal(t, field, updated)
	assert.Equal(t, "A", field.Value())
}

func TestField_IgnoresKeysWhenBlurred(t *testing.T) {
	field := NewField(nil, "IDs", "")

	field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}})

	assert.Equal(t, "", field.Value())
}

func TestField_FocusAndBlur(t *testing.T) {
	field := NewField(nil, "IDs", "")

	field.Focus()
	assert.True(t, field.Focused())

	field.Blur()
	assert.False(t, field.Focused())
}

func TestField_View(t *testing.T) {
	field := NewField(nil, "Sequence", "")
	field.SetValue("MKV")

	view := field.View()

	assert.Contains(t, view, "Sequence")
	assert.Contains(t, view, "MKV")
}

func TestField_SetWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantInput int
	}{
		{"wide", 80, 62},
		{"narrow clamps", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := NewField(nil, "IDs", "")
			field.SetWidth(tt.width)

			assert.Equal(t, tt.width, field.Width())
			assert.Equal(t, tt.wantInput, field.textinput.Width)
		})
	}
}

func TestField_Reset(t *testing.T) {
	field := NewField(nil, "IDs", "")
	field.SetValue("A,B")

	field.Reset()

	assert.Equal(t, "", field.Value())
}
