package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/components/dialog"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/views/constraint"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/views/ligand"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui/views/protein"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	proteinView    *protein.View
	ligandView     *ligand.View
	constraintView *constraint.View
	previewView    *preview.View

	// dialog reports every commit outcome and blocks input until dismissed.
	dialog    *dialog.Dialog
	statusBar *status.Bar

	// currentView tracks which tab is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		proteinView:    protein.NewView(s, ports.Builder),
		ligandView:     ligand.NewView(s, ports.Builder),
		constraintView: constraint.NewView(s, ports.Builder),
		previewView:    preview.NewView(s, ports.Builder),
		dialog:         dialog.New(s, km),
		statusBar:      status.NewBar(s, km),
		currentView:    messages.ViewProteins,
	}
	a.refreshStatus()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("foldcfg - structure prediction input builder"),
		a.proteinView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ProteinAdded:
		a.proteinView, cmd = a.proteinView.Update(msg)
		if a.report(msg.Err) {
			a.dialog.ShowSuccess(fmt.Sprintf("Protein added with %d copies", len(msg.Protein.IDs)))
		}
		a.afterCommit()
		return a, cmd

	case messages.LigandAdded:
		a.ligandView, cmd = a.ligandView.Update(msg)
		if a.report(msg.Err) {
			a.dialog.ShowSuccess(fmt.Sprintf("Ligand added with %d copies", len(msg.Ligand.IDs)))
		}
		a.afterCommit()
		return a, cmd

	case messages.ContactAdded:
		a.constraintView, cmd = a.constraintView.Update(msg)
		if a.report(msg.Err) {
			a.dialog.ShowSuccess(fmt.Sprintf("Added %s:%d to %s", msg.Contact.Chain, msg.Contact.Residue, msg.Binder))
		}
		a.afterCommit()
		return a, cmd

	case messages.ConstraintFinalized:
		a.constraintView, cmd = a.constraintView.Update(msg)
		if a.report(msg.Err) {
			a.dialog.ShowSuccess(fmt.Sprintf("Constraint finalized for %s", msg.Pocket.Binder))
		}
		a.afterCommit()
		return a, cmd

	case messages.PendingDiscarded:
		a.constraintView, cmd = a.constraintView.Update(msg)
		a.afterCommit()
		a.statusBar.SetMessage("pending contacts discarded")
		return a, cmd

	case messages.DocumentRendered:
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd

	case messages.DocumentGenerated:
		a.previewView, cmd = a.previewView.Update(msg)
		if a.report(msg.Err) {
			a.dialog.ShowSuccess(fmt.Sprintf("YAML generated and saved as '%s'", msg.Document.Path))
			a.currentView = messages.ViewPreview
		}
		a.refreshStatus()
		return a, cmd

	case messages.ErrorOccurred:
		a.report(msg.Err)
		return a, nil

	case messages.DialogDismissed:
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg routes keys: quit first, then the dialog, then global
// bindings, then the active tab.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.dialog.Visible() {
		a.dialog, cmd = a.dialog.Update(msg)
		return a, cmd
	}

	switch {
	case keymap.Matches(k, a.keymap.NextTab):
		return a, a.switchTo(a.offsetView(1))
	case keymap.Matches(k, a.keymap.PrevTab):
		return a, a.switchTo(a.offsetView(-1))
	case keymap.Matches(k, a.keymap.Generate):
		return a, a.generate()
	}

	switch a.currentView {
	case messages.ViewProteins:
		a.proteinView, cmd = a.proteinView.Update(msg)
	case messages.ViewLigands:
		a.ligandView, cmd = a.ligandView.Update(msg)
	case messages.ViewConstraints:
		a.constraintView, cmd = a.constraintView.Update(msg)
	case messages.ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	}
	return a, cmd
}

// report shows failures in the dialog and returns true on success.
func (a *App) report(err error) bool {
	if err == nil {
		a.err = nil
		return true
	}
	a.err = err
	a.dialog.ShowError(err)
	return false
}

// afterCommit refreshes state derived from the session.
func (a *App) afterCommit() {
	a.constraintView.Refresh()
	a.refreshStatus()
}

func (a *App) refreshStatus() {
	a.statusBar.SetMessage("")
	a.statusBar.SetSummary(a.ports.Builder.Snapshot())
	if a.currentView == messages.ViewConstraints {
		a.statusBar.SetHints(a.keymap.ConstraintHelp())
	} else {
		a.statusBar.SetHints(a.keymap.ShortHelp())
	}
}

func (a *App) offsetView(delta int) messages.ViewType {
	views := messages.AllViews()
	i := (int(a.currentView) + delta + len(views)) % len(views)
	return views[i]
}

// switchTo activates a tab and returns its initialisation command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.refreshStatus()

	switch view {
	case messages.ViewProteins:
		return a.proteinView.Init()
	case messages.ViewLigands:
		return a.ligandView.Init()
	case messages.ViewConstraints:
		return a.constraintView.Init()
	case messages.ViewPreview:
		return a.previewView.Init()
	}
	return nil
}

// generate returns a command that writes the document.
func (a *App) generate() tea.Cmd {
	builder := a.ports.Builder
	return func() tea.Msg {
		doc, err := builder.Generate()
		return messages.DocumentGenerated{Document: doc, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	if a.dialog.Visible() {
		b.WriteString(a.dialog.View())
	} else {
		b.WriteString(a.currentBody())
	}

	body := b.String()
	gap := a.height - lipgloss.Height(body) - 1
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + a.statusBar.View()
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("foldcfg")
	out := a.styles.Muted.Render(fmt.Sprintf("  output: %s", a.ports.Builder.OutputPath()))
	return title + out
}

func (a *App) renderTabs() string {
	views := messages.AllViews()
	tabs := make([]string, len(views))
	for i, v := range views {
		if v == a.currentView {
			tabs[i] = a.styles.ActiveTab.Render(v.String())
		} else {
			tabs[i] = a.styles.Tab.Render(v.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) currentBody() string {
	switch a.currentView {
	case messages.ViewProteins:
		return a.proteinView.View()
	case messages.ViewLigands:
		return a.ligandView.View()
	case messages.ViewConstraints:
		return a.constraintView.View()
	case messages.ViewPreview:
		return a.previewView.View()
	default:
		return a.proteinView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// DialogVisible reports whether the modal dialog is open.
func (a *App) DialogVisible() bool {
	return a.dialog.Visible()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.proteinView.SetDimensions(width, height)
	a.ligandView.SetDimensions(width, height)
	a.constraintView.SetDimensions(width, height)
	a.previewView.SetDimensions(width, height)
	a.dialog.SetDimensions(width, height-6)
	a.statusBar.SetWidth(width)
}
