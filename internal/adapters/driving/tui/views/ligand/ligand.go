// Package ligand provides the ligand entry form for the TUI.
package ligand

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
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/views/protein"
	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// View is the ligand entry form.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	builder driving.BuilderService

	copies *selector.Selector
	ids    *input.Field
	kind   *selector.Selector
	value  *input.Field
	ring   *form.Ring

	width  int
	height int
}

// NewView creates a new ligand view.
func NewView(s *styles.Styles, builder driving.BuilderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		builder: builder,
		copies:  selector.New(s, "Copies", "-"),
		ids:     input.NewField(s, "IDs", "L1"),
		kind:    selector.New(s, "Type", "-"),
		value:   input.NewField(s, "Value", "CCD code or SMILES string"),
	}
	v.copies.SetOptions(protein.CopyOptions(builder))

	kinds := domain.AllLigandKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	v.kind.SetOptions(selector.FromValues(names...))

	v.ring = form.NewRing(v.copies, v.ids, v.kind, v.value)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.ring.FocusFirst()
}

// Update handles messages for the ligand view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LigandAdded:
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
		v.kind, cmd = v.kind.Update(msg)
	case 3:
		v.value, cmd = v.value.Update(msg)
	}
	return v, cmd
}

// Form captures the current field values.
func (v *View) Form() domain.LigandForm {
	copies, _ := strconv.Atoi(v.copies.Value())
	return domain.LigandForm{
		Copies: copies,
		IDs:    v.ids.Value(),
		Kind:   v.kind.Value(),
		Value:  v.value.Value(),
	}
}

func (v *View) submit() tea.Cmd {
	f := v.Form()
	builder := v.builder
	return func() tea.Msg {
		l, err := builder.AddLigand(f)
		return messages.LigandAdded{Ligand: l, Err: err}
	}
}

// ClearInputs empties the ids and value after a successful commit.
func (v *View) ClearInputs() {
	v.ids.Reset()
	v.value.Reset()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ids.SetWidth(width - 4)
	v.value.SetWidth(width - 4)
}

// View renders the ligand form.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Add ligand"))
	b.WriteString("\n\n")
	for _, row := range v.ring.Views() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Registered ligands become binders on the Constraints tab."))
	return b.String()
}
