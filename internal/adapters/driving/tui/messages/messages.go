// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/foldcfg/internal/core/domain"
)

// ViewChanged is sent when navigating between tabs.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which tab is currently active.
type ViewType int

const (
	// ViewProteins is the protein entry form.
	ViewProteins ViewType = iota
	// ViewLigands is the ligand entry form.
	ViewLigands
	// ViewConstraints is the pocket constraint builder.
	ViewConstraints
	// ViewPreview shows the serialized document.
	ViewPreview
)

// AllViews returns the tabs in display order.
func AllViews() []ViewType {
	return []ViewType{ViewProteins, ViewLigands, ViewConstraints, ViewPreview}
}

// String returns the tab title.
func (v ViewType) String() string {
	switch v {
	case ViewProteins:
		return "Proteins"
	case ViewLigands:
		return "Ligands"
	case ViewConstraints:
		return "Constraints"
	case ViewPreview:
		return "Preview"
	default:
		return "Unknown"
	}
}

// ProteinAdded carries the result of a protein form submission.
type ProteinAdded struct {
	Protein *domain.Protein
	Err     error
}

// LigandAdded carries the result of a ligand form submission.
type LigandAdded struct {
	Ligand *domain.Ligand
	Err    error
}

// ContactAdded carries the result of staging a contact.
type ContactAdded struct {
	Binder  string
	Contact domain.Contact
	Err     error
}

// ConstraintFinalized carries the result of committing the pending pocket.
type ConstraintFinalized struct {
	Pocket *domain.Pocket
	Err    error
}

// PendingDiscarded is sent after the pending pocket has been dropped.
type PendingDiscarded struct{}

// DocumentRendered carries a preview of the serialized document.
type DocumentRendered struct {
	Content []byte
	Err     error
}

// DocumentGenerated carries the result of writing the document.
type DocumentGenerated struct {
	Document *domain.GeneratedDocument
	Err      error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// DialogDismissed is sent when the modal dialog closes.
type DialogDismissed struct{}

// Quit signals the application should exit.
type Quit struct{}
