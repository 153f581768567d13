// Package dialog provides the modal message box for the TUI.
package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
)

// Dialog is a modal box reporting the outcome of an action.
// While visible it captures all key input until dismissed.
type Dialog struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	title   string
	body    string
	failed  bool
	visible bool
	width   int
	height  int
}

// New creates a hidden dialog.
func New(s *styles.Styles, km *keymap.KeyMap) *Dialog {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Dialog{styles: s, keymap: km}
}

// ShowSuccess opens the dialog with a success message.
func (d *Dialog) ShowSuccess(body string) {
	d.show("Success", body, false)
}

// ShowError opens the dialog with an error message.
func (d *Dialog) ShowError(err error) {
	d.show("Error", err.Error(), true)
}

func (d *Dialog) show(title, body string, failed bool) {
	d.title = title
	d.body = body
	d.failed = failed
	d.visible = true
}

// Update dismisses the dialog on enter or esc.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.visible {
		return d, nil
	}
	if keymap.Matches(keyMsg.String(), d.keymap.Dismiss) {
		d.Dismiss()
		return d, func() tea.Msg { return messages.DialogDismissed{} }
	}
	return d, nil
}

// Dismiss hides the dialog.
func (d *Dialog) Dismiss() {
	d.visible = false
}

// Visible reports whether the dialog is open.
func (d *Dialog) Visible() bool {
	return d.visible
}

// Failed reports whether the dialog shows an error.
func (d *Dialog) Failed() bool {
	return d.failed
}

// Title returns the dialog title.
func (d *Dialog) Title() string {
	return d.title
}

// Body returns the dialog message.
func (d *Dialog) Body() string {
	return d.body
}

// SetDimensions sets the area the dialog is centred in.
func (d *Dialog) SetDimensions(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dialog centred in its area, or "" when hidden.
func (d *Dialog) View() string {
	if !d.visible {
		return ""
	}

	title := d.styles.Success.Bold(true).Render(d.title)
	if d.failed {
		title = d.styles.Error.Bold(true).Render(d.title)
	}
	hint := d.styles.Muted.Render("[enter] ok")

	box := d.styles.DialogFor(d.failed).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", d.styles.Normal.Render(d.body), "", hint),
	)
	if d.width <= 0 || d.height <= 0 {
		return box
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
