package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s := New(nil, "Binder", "no ligands yet")

	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Value())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Contains(t, s.View(), "no ligands yet")
}

func TestFromValues(t *testing.T) {
	opts := FromValues("CCD", "SMILES")

	assert.Equal(t, []Option{{Value: "CCD", Label: "CCD"}, {Value: "SMILES", Label: "SMILES"}}, opts)
}

func TestSelector_NextPrevWrap(t *testing.T) {
	s := New(nil, "Kind", "")
	s.SetOptions(FromValues("a", "b", "c"))

	s.Next()
	assert.Equal(t, "b", s.Value())
	s.Next()
	s.Next()
	assert.Equal(t, "a", s.Value())
	s.Prev()
	assert.Equal(t, "c", s.Value())
}

func TestSelector_NextPrevEmpty(t *testing.T) {
	s := New(nil, "Kind", "")

	s.Next()
	s.Prev()

	assert.Equal(t, "", s.Value())
}

func TestSelector_SetOptionsKeepsSelection(t *testing.T) {
	s := New(nil, "Chain", "")
	s.SetOptions(FromValues("A", "B"))
	require.True(t, s.Select("B"))

	s.SetOptions(FromValues("A", "B", "C"))
	assert.Equal(t, "B", s.Value())

	s.SetOptions(FromValues("C"))
	assert.Equal(t, "C", s.Value())
}

func TestSelector_Select_Unknown(t *testing.T) {
	s := New(nil, "Chain", "")
	s.SetOptions(FromValues("A"))

	assert.False(t, s.Select("Z"))
	assert.Equal(t, "A", s.Value())
}

func TestSelector_UpdateOnlyWhenFocused(t *testing.T) {
	s := New(nil, "Kind", "")
	s.SetOptions(FromValues("CCD", "SMILES"))
	right := tea.KeyMsg{Type: tea.KeyRight}

	s.Update(right)
	assert.Equal(t, "CCD", s.Value())

	s.Focus()
	s.Update(right)
	assert.Equal(t, "SMILES", s.Value())

	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "CCD", s.Value())
}

func TestSelector_View(t *testing.T) {
	s := New(nil, "Binder", "")
	s.SetOptions([]Option{{Value: "L1", Label: "L1 (CCD: ATP)"}})

	view := s.View()

	assert.Contains(t, view, "Binder")
	assert.Contains(t, view, "L1 (CCD: ATP)")
}

func TestSelector_Reset(t *testing.T) {
	s := New(nil, "Kind", "")
	s.SetOptions(FromValues("a", "b"))
	s.Next()

	s.Reset()

	assert.Equal(t, "a", s.Value())
}
