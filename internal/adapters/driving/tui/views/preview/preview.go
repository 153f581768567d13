// Package preview shows the serialized document in a scrollable pane.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// reservedLines is the chrome around the viewport: tabs, header and status bar.
const reservedLines = 8

// View is the YAML preview pane.
type View struct {
	styles  *styles.Styles
	builder driving.BuilderService

	viewport viewport.Model
	content  string
	saved    string
	err      error

	width  int
	height int
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, builder driving.BuilderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		builder:  builder,
		viewport: viewport.New(80, 20),
	}
}

// Init renders the current document.
func (v *View) Init() tea.Cmd {
	return v.render()
}

// render returns a command that serializes the document without writing it.
func (v *View) render() tea.Cmd {
	builder := v.builder
	return func() tea.Msg {
		if builder == nil {
			return messages.DocumentRendered{Err: fmt.Errorf("builder service not available")}
		}
		content, err := builder.Render()
		return messages.DocumentRendered{Content: content, Err: err}
	}
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DocumentRendered:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.setContent(string(msg.Content))
		return v, nil

	case messages.DocumentGenerated:
		if msg.Err == nil && msg.Document != nil {
			v.saved = msg.Document.Path
			v.setContent(string(msg.Document.Content))
		}
		return v, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) setContent(content string) {
	v.err = nil
	v.content = content
	v.viewport.SetContent(content)
	v.viewport.GotoTop()
}

// Content returns the displayed document text.
func (v *View) Content() string {
	return v.content
}

// SavedPath returns where the document was last written, if anywhere.
func (v *View) SavedPath() string {
	return v.saved
}

// Err returns the last render error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	h := height - reservedLines
	if h < 3 {
		h = 3
	}
	v.viewport.Height = h
}

// View renders the preview pane.
func (v *View) View() string {
	var b strings.Builder
	header := "Preview (not saved)"
	if v.saved != "" {
		header = fmt.Sprintf("Saved to %s", v.saved)
	}
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		return b.String()
	}
	b.WriteString(v.viewport.View())
	return b.String()
}
