// Package selector provides a cycling option picker for the TUI.
package selector

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
)

// Option is one selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Selector picks one option out of a list with the arrow keys.
type Selector struct {
	label       string
	placeholder string
	options     []Option
	index       int
	focused     bool
	styles      *styles.Styles
	keymap      *keymap.KeyMap
}

// New creates a selector with no options.
func New(s *styles.Styles, label, placeholder string) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Selector{
		label:       label,
		placeholder: placeholder,
		styles:      s,
		keymap:      keymap.DefaultKeyMap(),
	}
}

// FromValues builds options whose labels equal their values.
func FromValues(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return opts
}

// SetOptions replaces the options, keeping the current selection when it
// is still offered.
func (s *Selector) SetOptions(opts []Option) {
	current := s.Value()
	s.options = append([]Option(nil), opts...)
	s.index = 0
	for i, o := range s.options {
		if o.Value == current {
			s.index = i
			break
		}
	}
}

// Options returns the available options.
func (s *Selector) Options() []Option {
	return s.options
}

// Len returns the number of options.
func (s *Selector) Len() int {
	return len(s.options)
}

// Update cycles the selection when focused.
func (s *Selector) Update(msg tea.Msg) (*Selector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}
	switch {
	case keymap.Matches(keyMsg.String(), s.keymap.OptionNext):
		s.Next()
	case keymap.Matches(keyMsg.String(), s.keymap.OptionPrev):
		s.Prev()
	}
	return s, nil
}

// Next selects the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

// Prev selects the previous option, wrapping around.
func (s *Selector) Prev() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

// Selected returns the current option.
func (s *Selector) Selected() (Option, bool) {
	if len(s.options) == 0 {
		return Option{}, false
	}
	return s.options[s.index], true
}

// Value returns the selected value, or "" when nothing is offered.
func (s *Selector) Value() string {
	o, _ := s.Selected()
	return o.Value
}

// Select moves to the option with the given value.
func (s *Selector) Select(value string) bool {
	for i, o := range s.options {
		if o.Value == value {
			s.index = i
			return true
		}
	}
	return false
}

// Reset returns to the first option.
func (s *Selector) Reset() {
	s.index = 0
}

// Focus marks the selector as focused.
func (s *Selector) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus.
func (s *Selector) Blur() {
	s.focused = false
}

// Focused returns whether the selector is focused.
func (s *Selector) Focused() bool {
	return s.focused
}

// View renders the label and the current option.
func (s *Selector) View() string {
	label := s.styles.Label.Render(s.label)
	box := s.styles.InputField
	if s.focused {
		label = s.styles.FocusedLabel.Render(s.label)
		box = s.styles.FocusedInput
	}

	var body string
	if o, ok := s.Selected(); ok {
		body = s.styles.Normal.Render(fmt.Sprintf("‹ %s ›", o.Label))
	} else {
		body = s.styles.Muted.Render(s.placeholder)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(body))
}
