package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
)

// Area wraps a bubbles textarea for long values such as sequences.
// Newlines are not inserted from the keyboard; pasted text may span lines.
type Area struct {
	label    string
	textarea textarea.Model
	styles   *styles.Styles
}

// NewArea creates a labelled multi-line input.
func NewArea(s *styles.Styles, label, placeholder string) *Area {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return &Area{label: label, textarea: ta, styles: s}
}

// Update handles input messages.
func (a *Area) Update(msg tea.Msg) (*Area, tea.Cmd) {
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// View renders the label above the text area.
func (a *Area) View() string {
	label := a.styles.Label.Render(a.label)
	box := a.styles.InputField
	if a.Focused() {
		label = a.styles.FocusedLabel.Render(a.label)
		box = a.styles.FocusedInput
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(a.textarea.View()))
}

// Label returns the field label.
func (a *Area) Label() string {
	return a.label
}

// Value returns the current text.
func (a *Area) Value() string {
	return a.textarea.Value()
}

// SetValue replaces the text.
func (a *Area) SetValue(value string) {
	a.textarea.SetValue(value)
}

// Focus sets focus on the area.
func (a *Area) Focus() tea.Cmd {
	return a.textarea.Focus()
}

// Blur removes focus.
func (a *Area) Blur() {
	a.textarea.Blur()
}

// Focused returns whether the area is focused.
func (a *Area) Focused() bool {
	return a.textarea.Focused()
}

// SetWidth sets the text area width.
func (a *Area) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	a.textarea.SetWidth(width)
}

// Reset clears the text.
func (a *Area) Reset() {
	a.textarea.Reset()
}
