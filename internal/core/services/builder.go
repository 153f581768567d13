package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driven"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
	"github.com/custodia-labs/foldcfg/internal/logger"
)

// Ensure BuilderService implements the interface.
var _ driving.BuilderService = (*BuilderService)(nil)

// ErrNoEncoder is returned when rendering without a document encoder.
var ErrNoEncoder = errors.New("document encoder not configured")

// ErrNoWriter is returned when generating without a document writer.
var ErrNoWriter = errors.New("document writer not configured")

// BuilderOptions configures a BuilderService.
type BuilderOptions struct {
	// Version is the schema tag for new sessions.
	Version int

	// Limits bounds entity copy counts.
	Limits domain.CopyLimits

	// OutputPath is where Generate writes.
	OutputPath string
}

// BuilderOptionsFromSettings derives builder options from app settings.
func BuilderOptionsFromSettings(s *domain.AppSettings) BuilderOptions {
	return BuilderOptions{
		Version:    s.Document.Version,
		Limits:     s.Form.CopyLimits(),
		OutputPath: s.Output.Path,
	}
}

// BuilderService owns the application session and applies form handlers to it.
// The mutex serialises callers; each method swaps in the next session only
// when its handler succeeds.
type BuilderService struct {
	mu      sync.Mutex
	session *domain.Session
	opts    BuilderOptions
	encoder driven.DocumentEncoder
	writer  driven.DocumentWriter
}

// NewBuilderService creates a builder with an empty session.
func NewBuilderService(
	encoder driven.DocumentEncoder,
	writer driven.DocumentWriter,
	opts BuilderOptions,
) *BuilderService {
	if opts.Limits == (domain.CopyLimits{}) {
		opts.Limits = domain.DefaultCopyLimits()
	}
	if opts.OutputPath == "" {
		opts.OutputPath = domain.DefaultOutputPath
	}
	if opts.Version <= 0 {
		opts.Version = domain.SchemaVersion
	}
	return &BuilderService{
		session: domain.NewSession(opts.Version),
		opts:    opts,
		encoder: encoder,
		writer:  writer,
	}
}

// AddProtein validates the form and appends a protein entity.
func (b *BuilderService) AddProtein(form domain.ProteinForm) (*domain.Protein, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := AddProtein(b.session, form, b.opts.Limits)
	if err != nil {
		logger.Debug("add protein rejected: %v", err)
		return nil, err
	}
	b.session = next

	entity := next.Document.Sequences[len(next.Document.Sequences)-1]
	logger.Debug("added protein %v (%d residues)", entity.Protein.IDs, len(entity.Protein.Sequence))
	p := *entity.Protein
	return &p, nil
}

// AddLigand validates the form and appends a ligand entity.
func (b *BuilderService) AddLigand(form domain.LigandForm) (*domain.Ligand, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := AddLigand(b.session, form, b.opts.Limits)
	if err != nil {
		logger.Debug("add ligand rejected: %v", err)
		return nil, err
	}
	b.session = next

	entity := next.Document.Sequences[len(next.Document.Sequences)-1]
	logger.Debug("added ligand %v (%s: %s)", entity.Ligand.IDs, entity.Ligand.Kind, entity.Ligand.Value)
	l := *entity.Ligand
	return &l, nil
}

// AddContact stages a contact for the pending pocket constraint.
func (b *BuilderService) AddContact(form domain.ContactForm) (domain.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, contact, err := AddContact(b.session, form)
	if err != nil {
		logger.Debug("add contact rejected: %v", err)
		return domain.Contact{}, err
	}
	b.session = next
	logger.Debug("staged contact %s:%d for %s", contact.Chain, contact.Residue, next.Pending.Binder)
	return contact, nil
}

// FinalizeConstraint commits the pending pocket constraint.
func (b *BuilderService) FinalizeConstraint() (*domain.Pocket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, pocket, err := FinalizeConstraint(b.session)
	if err != nil {
		logger.Debug("finalize rejected: %v", err)
		return nil, err
	}
	b.session = next
	logger.Debug("committed pocket for %s with %d contacts", pocket.Binder, len(pocket.Contacts))
	return pocket, nil
}

// DiscardPending drops the pending binder and its contacts.
func (b *BuilderService) DiscardPending() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = DiscardPending(b.session)
}

// Pending returns a copy of the pending constraint.
func (b *BuilderService) Pending() domain.PendingConstraint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Pending.Clone()
}

// ChainOptions returns the registered protein chain ids.
func (b *BuilderService) ChainOptions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Registry.ChainOptions()
}

// BinderOptions returns the registered ligand ids with display labels.
func (b *BuilderService) BinderOptions() []domain.BinderOption {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Registry.BinderOptions()
}

// Snapshot returns a deep copy of the current session.
func (b *BuilderService) Snapshot() *domain.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Clone()
}

// Render serializes the current document without writing it.
func (b *BuilderService) Render() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.render()
}

func (b *BuilderService) render() ([]byte, error) {
	if b.encoder == nil {
		return nil, ErrNoEncoder
	}
	data, err := b.encoder.Encode(b.session.Document)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Generate serializes the current document and writes it to the output path.
func (b *BuilderService) Generate() (*domain.GeneratedDocument, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.writer == nil {
		return nil, ErrNoWriter
	}

	data, err := b.render()
	if err != nil {
		return nil, err
	}

	if err := b.writer.Write(b.opts.OutputPath, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", b.opts.OutputPath, err)
	}

	logger.Info("wrote %d bytes to %s", len(data), b.opts.OutputPath)
	return &domain.GeneratedDocument{Path: b.opts.OutputPath, Content: data}, nil
}

// OutputPath returns where Generate writes.
func (b *BuilderService) OutputPath() string {
	return b.opts.OutputPath
}

// Limits returns the accepted copy count range.
func (b *BuilderService) Limits() domain.CopyLimits {
	return b.opts.Limits
}

// Reset starts a new empty session.
func (b *BuilderService) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = domain.NewSession(b.opts.Version)
	logger.Debug("session reset")
}
