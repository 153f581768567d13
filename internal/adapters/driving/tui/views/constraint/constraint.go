// Package constraint provides the pocket constraint builder for the TUI.
package constraint

import (
	"fmt"
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

// View stages contacts for one binder and commits them as a pocket.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	builder driving.BuilderService

	binder  *selector.Selector
	chain   *selector.Selector
	residue *input.Field
	ring    *form.Ring

	pending     domain.PendingConstraint
	constraints []domain.Constraint

	width  int
	height int
}

// NewView creates a new constraint view.
func NewView(s *styles.Styles, builder driving.BuilderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		builder: builder,
		binder:  selector.New(s, "Binder", "add a ligand first"),
		chain:   selector.New(s, "Chain", "add a protein first"),
		residue: input.NewField(s, "Residue", "residue index"),
	}
	v.ring = form.NewRing(v.binder, v.chain, v.residue)
	v.Refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads the selector options and pending state from the builder.
func (v *View) Refresh() {
	if v.builder == nil {
		return
	}

	binders := v.builder.BinderOptions()
	opts := make([]selector.Option, len(binders))
	for i, b := range binders {
		opts[i] = selector.Option{Value: b.ID, Label: b.Label}
	}
	v.binder.SetOptions(opts)
	v.chain.SetOptions(selector.FromValues(v.builder.ChainOptions()...))

	v.pending = v.builder.Pending()
	if v.pending.Binder != "" {
		v.binder.Select(v.pending.Binder)
	}
	v.constraints = v.builder.Snapshot().Document.Constraints
}

// Update handles messages for the constraint view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ContactAdded:
		if msg.Err == nil {
			v.residue.Reset()
		}
		v.Refresh()
		return v, nil

	case messages.ConstraintFinalized, messages.PendingDiscarded:
		v.Refresh()
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
		return v, v.addContact()
	case keymap.Matches(msg.String(), v.keymap.Finalize):
		return v, v.finalize()
	case keymap.Matches(msg.String(), v.keymap.Discard):
		return v, v.discard()
	}

	switch v.ring.Index() {
	case 0:
		v.binder, cmd = v.binder.Update(msg)
	case 1:
		v.chain, cmd = v.chain.Update(msg)
	case 2:
		v.residue, cmd = v.residue.Update(msg)
	}
	return v, cmd
}

// Form captures the current selections.
func (v *View) Form() domain.ContactForm {
	return domain.ContactForm{
		Binder:  v.binder.Value(),
		Chain:   v.chain.Value(),
		Residue: v.residue.Value(),
	}
}

func (v *View) addContact() tea.Cmd {
	f := v.Form()
	builder := v.builder
	return func() tea.Msg {
		c, err := builder.AddContact(f)
		return messages.ContactAdded{Binder: f.Binder, Contact: c, Err: err}
	}
}

func (v *View) finalize() tea.Cmd {
	builder := v.builder
	return func() tea.Msg {
		p, err := builder.FinalizeConstraint()
		return messages.ConstraintFinalized{Pocket: p, Err: err}
	}
}

func (v *View) discard() tea.Cmd {
	builder := v.builder
	return func() tea.Msg {
		builder.DiscardPending()
		return messages.PendingDiscarded{}
	}
}

// Pending returns the pending constraint last loaded.
func (v *View) Pending() domain.PendingConstraint {
	return v.pending
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.residue.SetWidth(width / 2)
}

// View renders the selectors, the pending pocket and the committed ones.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Pocket constraint"))
	b.WriteString("\n\n")
	for _, row := range v.ring.Views() {
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.pending.State() == domain.StateAccumulating {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf(
			"Pending %s: %s", v.pending.Binder, formatContacts(v.pending.Contacts),
		)))
	} else {
		b.WriteString(v.styles.Muted.Render("No pending contacts"))
	}
	b.WriteString("\n\n")

	if len(v.constraints) > 0 {
		b.WriteString(v.styles.Normal.Render("Committed:"))
		b.WriteString("\n")
		for i, c := range v.constraints {
			if c.Pocket == nil {
				continue
			}
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
				"  %d. %s -> %s", i+1, c.Pocket.Binder, formatContacts(c.Pocket.Contacts),
			)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatContacts(contacts []domain.Contact) string {
	parts := make([]string, len(contacts))
	for i, c := range contacts {
		parts[i] = fmt.Sprintf("%s:%d", c.Chain, c.Residue)
	}
	return strings.Join(parts, ", ")
}
