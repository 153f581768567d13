// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// NextTab moves to the next tab.
	NextTab key.Binding

	// PrevTab moves to the previous tab.
	PrevTab key.Binding

	// NextField moves focus to the next form field.
	NextField key.Binding

	// PrevField moves focus to the previous form field.
	PrevField key.Binding

	// Submit commits the active form.
	Submit key.Binding

	// Finalize commits the pending pocket constraint.
	Finalize key.Binding

	// Discard drops the pending pocket constraint.
	Discard key.Binding

	// Generate writes the document to disk.
	Generate key.Binding

	// Dismiss closes the dialog.
	Dismiss key.Binding

	// OptionNext cycles a selector forward.
	OptionNext key.Binding

	// OptionPrev cycles a selector backward.
	OptionPrev key.Binding

	// Up scrolls the preview.
	Up key.Binding

	// Down scrolls the preview.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev tab"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Finalize: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "finalize"),
		),
		Discard: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "discard"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "close"),
		),
		OptionNext: key.NewBinding(
			key.WithKeys("right", "down"),
			key.WithHelp("→", "next option"),
		),
		OptionPrev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←", "prev option"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextTab, k.Generate, k.Quit}
}

// ConstraintHelp returns keybindings for the constraints tab.
func (k *KeyMap) ConstraintHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Finalize, k.Discard, k.Generate, k.Quit}
}

// DialogHelp returns keybindings while a dialog is open.
func (k *KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.OptionNext, k.OptionPrev},
		{k.Submit, k.Finalize, k.Discard, k.Generate},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
