package driving

import "github.com/custodia-labs/foldcfg/internal/core/domain"

// BuilderService assembles a document from form submissions.
// Every mutating method is all-or-nothing: on error the session is unchanged.
type BuilderService interface {
	// AddProtein validates the form and appends a protein entity.
	AddProtein(form domain.ProteinForm) (*domain.Protein, error)

	// AddLigand validates the form and appends a ligand entity.
	AddLigand(form domain.LigandForm) (*domain.Ligand, error)

	// AddContact stages a contact for the pending pocket constraint.
	AddContact(form domain.ContactForm) (domain.Contact, error)

	// FinalizeConstraint commits the pending pocket constraint.
	FinalizeConstraint() (*domain.Pocket, error)

	// DiscardPending drops the pending binder and its contacts.
	DiscardPending()

	// Pending returns a copy of the pending constraint.
	Pending() domain.PendingConstraint

	// ChainOptions returns the registered protein chain ids.
	ChainOptions() []string

	// BinderOptions returns the registered ligand ids with display labels.
	BinderOptions() []domain.BinderOption

	// Snapshot returns a deep copy of the current session.
	Snapshot() *domain.Session

	// Render serializes the current document without writing it.
	Render() ([]byte, error)

	// Generate serializes the current document and writes it to the output path.
	Generate() (*domain.GeneratedDocument, error)

	// OutputPath returns where Generate writes.
	OutputPath() string

	// Limits returns the accepted copy count range.
	Limits() domain.CopyLimits

	// Reset starts a new empty session.
	Reset()
}
