// Package protein provides the protein entry form for the TUI.
package protein

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/components/selector"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// View is the protein entry form.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	builder driving.BuilderService

	copies   *selector.Selector
	ids      *input.Field
	sequence *input.Area
	msa      *input.Field
	ring     *form.Ring

	width  int
	height int
}

// NewView creates a new protein view.
func NewView(s *styles.Styles, builder driving.BuilderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		builder:  builder,
		copies:   selector.New(s, "Copies", "-"),
		ids:      input.NewField(s, "IDs", "A, B"),
		sequence: input.NewArea(s, "Sequence", "MKTAYIAKQR..."),
		msa:      input.NewField(s, "MSA", "path to .a3m (default: empty)"),
	}
	v.copies.SetOptions(CopyOptions(builder))
	v.ring = form.NewRing(v.copies, v.ids, v.sequence, v.msa)
	return v
}

// CopyOptions lists the accepted copy counts from the builder limits.
func CopyOptions(builder driving.BuilderService) []selector.Option {
	limits := domain.DefaultCopyLimits()
	if builder != nil {
		limits = builder.Limits()
	}
	values := make([]string, 0, limits.Max-limits.Min+1)
	for n := limits.Min; n <= limits.Max; n++ {
		values = append(values, strconv.Itoa(n))
	}
	return selector.FromValues(values...)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.ring.FocusFirst()
}

// Update handles messages for the protein view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProteinAdded:
		if msg.Err == nil {
			v.ClearInputs()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case keymap.Matches(msg.String(), v.keymap.NextField):
		return v, v.ring.Next()
	case keymap.Matches(msg.String(), v.keymap.PrevField):
		return v, v.ring.Prev()
	case keymap.Matches(msg.String(), v.keymap.Submit):
		return v, v.submit()
	}

	switch v.ring.Index() {
	case 0:
		v.copies, cmd = v.copies.Update(msg)
	case 1:
		v.ids, cmd = v.ids.Update(msg)
	case 2:
		v.sequence, cmd = v.sequence.Update(msg)
	case 3:
		v.msa, cmd = v.msa.Update(msg)
	}
	return v, cmd
}

// Form captures the current field values.
func (v *View) Form() domain.ProteinForm {
	copies, _ := strconv.Atoi(v.copies.Value())
	return domain.ProteinForm{
		Copies:   copies,
		IDs:      v.ids.Value(),
		Sequence: v.sequence.Value(),
		MSA:      v.msa.Value(),
	}
}

// submit returns a command that commits the form.
func (v *View) submit() tea.Cmd {
	f := v.Form()
	builder := v.builder
	return func() tea.Msg {
		p, err := builder.AddProtein(f)
		return messages.ProteinAdded{Protein: p, Err: err}
	}
}

// ClearInputs empties the text fields after a successful commit.
// The copy count is kept.
func (v *View) ClearInputs() {
	v.ids.Reset()
	v.sequence.Reset()
	v.msa.Reset()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ids.SetWidth(width - 4)
	v.msa.SetWidth(width - 4)
	v.sequence.SetWidth(width - 8)
}

// View renders the protein form.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Add protein"))
	b.WriteString("\n\n")
	for _, row := range v.ring.Views() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("IDs are comma-separated, one per copy. Whitespace in the sequence is removed."))
	return b.String()
}
