// Package form moves focus between the inputs of a form view.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Focusable is an input that can hold keyboard focus.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// Ring cycles focus through a fixed list of inputs.
type Ring struct {
	items []Focusable
	index int
}

// NewRing creates a ring with the first item focused.
func NewRing(items ...Focusable) *Ring {
	r := &Ring{items: items}
	r.FocusFirst()
	return r
}

// FocusFirst moves focus to the first item.
func (r *Ring) FocusFirst() tea.Cmd {
	return r.focus(0)
}

// Next moves focus forward, wrapping around.
func (r *Ring) Next() tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	return r.focus((r.index + 1) % len(r.items))
}

// Prev moves focus backward, wrapping around.
func (r *Ring) Prev() tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	return r.focus((r.index - 1 + len(r.items)) % len(r.items))
}

func (r *Ring) focus(i int) tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	for _, item := range r.items {
		item.Blur()
	}
	r.index = i
	return r.items[i].Focus()
}

// Index returns the focused position.
func (r *Ring) Index() int {
	return r.index
}

// Current returns the focused item.
func (r *Ring) Current() Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.index]
}

// Views renders every item in order.
func (r *Ring) Views() []string {
	out := make([]string, len(r.items))
	for i, item := range r.items {
		out[i] = item.View()
	}
	return out
}
