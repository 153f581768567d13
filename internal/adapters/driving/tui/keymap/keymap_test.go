package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"ctrl+c"}},
		{"NextTab", km.NextTab, []string{"ctrl+n"}},
		{"PrevTab", km.PrevTab, []string{"ctrl+p"}},
		{"NextField", km.NextField, []string{"tab"}},
		{"PrevField", km.PrevField, []string{"shift+tab"}},
		{"Submit", km.Submit, []string{"enter"}},
		{"Finalize", km.Finalize, []string{"ctrl+f"}},
		{"Discard", km.Discard, []string{"ctrl+d"}},
		{"Generate", km.Generate, []string{"ctrl+g"}},
		{"Dismiss", km.Dismiss, []string{"enter", "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 4)
	assert.Equal(t, km.Submit, bindings[0])
	assert.Equal(t, km.Quit, bindings[3])
}

func TestConstraintHelp_IncludesFinalize(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ConstraintHelp(), km.Finalize)
	assert.Contains(t, km.ConstraintHelp(), km.Discard)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)
	assert.Len(t, bindings[0], 4)
	assert.Len(t, bindings[1], 4)
	assert.Len(t, bindings[2], 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("esc", km.Dismiss))
	assert.True(t, Matches("left", km.OptionPrev))
	assert.False(t, Matches("q", km.Quit))
	assert.False(t, Matches("enter", km.Generate))
}
