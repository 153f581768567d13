// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/foldcfg/internal/core/domain"
)

// State represents the builder state for display.
type State string

const (
	StateReady   State = "ready"
	StatePending State = "pending"
	StateError   State = "error"
)

// Bar displays the document summary and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	sequences   int
	constraints int
	pending     domain.PendingConstraint
	hints       []key.Binding
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the document summary or the error message.
func (s *Bar) renderLeft() string {
	if s.state == StateError {
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	}

	summary := s.styles.Normal.Render(fmt.Sprintf(
		"%s, %s", plural(s.sequences, "sequence"), plural(s.constraints, "constraint"),
	))
	if s.state == StatePending {
		summary += s.styles.Warning.Render(fmt.Sprintf(
			" | pending %s (%s)", s.pending.Binder, plural(len(s.pending.Contacts), "contact"),
		))
	}
	if s.message != "" {
		summary += s.styles.Muted.Render(" | " + s.message)
	}
	return summary
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.hints
	if len(bindings) == 0 {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// SetSummary updates the counts from a session snapshot.
func (s *Bar) SetSummary(session *domain.Session) {
	if session == nil {
		return
	}
	s.sequences = len(session.Document.Sequences)
	s.constraints = len(session.Document.Constraints)
	s.pending = session.Pending.Clone()
	if s.pending.State() == domain.StateAccumulating {
		s.state = StatePending
	} else {
		s.state = StateReady
	}
}

// SetHints sets the keybindings shown on the right.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Counts returns the sequence and constraint counts last shown.
func (s *Bar) Counts() (sequences, constraints int) {
	return s.sequences, s.constraints
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.sequences = 0
	s.constraints = 0
	s.pending = domain.PendingConstraint{}
}
