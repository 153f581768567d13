package services

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
)

// Form handlers take the current session and a raw form and return the next
// session. The input session is never modified; on error the returned session
// is nil and the caller keeps using the one it has.

// AddProtein appends a protein entity and extends the chain registry.
func AddProtein(s *domain.Session, form domain.ProteinForm, limits domain.CopyLimits) (*domain.Session, error) {
	ids, err := validateIDs(form.Copies, form.IDs, limits)
	if err != nil {
		return nil, err
	}

	msa := domain.EmptyMSA
	if m := trimmed(form.MSA); m != "" {
		msa = m
	}

	protein := domain.Protein{
		IDs:      ids,
		Sequence: domain.StripWhitespace(form.Sequence),
		MSA:      msa,
	}

	next := s.Clone()
	next.Document.Sequences = append(next.Document.Sequences, domain.NewProteinEntity(protein))
	next.Registry.AddProteinIDs(ids...)
	return next, nil
}

// AddLigand appends a ligand entity and registers each id as a binder.
func AddLigand(s *domain.Session, form domain.LigandForm, limits domain.CopyLimits) (*domain.Session, error) {
	value := trimmed(form.Value)
	if value == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "value", "ligand value is required")
	}

	kind, ok := domain.ParseLigandKind(form.Kind)
	if !ok {
		return nil, domain.NewValidationError(domain.KindTypeMismatch, "kind",
			"ligand kind must be one of CCD, SMILES, got %q", form.Kind)
	}

	ids, err := validateIDs(form.Copies, form.IDs, limits)
	if err != nil {
		return nil, err
	}

	ligand := domain.Ligand{IDs: ids, Kind: kind, Value: value}

	next := s.Clone()
	next.Document.Sequences = append(next.Document.Sequences, domain.NewLigandEntity(ligand))
	for _, id := range ids {
		next.Registry.RegisterLigand(id, domain.LigandInfo{Kind: kind, Value: value})
	}
	return next, nil
}

// AddContact stages a contact under the pending binder, locking the binder on
// the first contact.
func AddContact(s *domain.Session, form domain.ContactForm) (*domain.Session, domain.Contact, error) {
	binder := trimmed(form.Binder)
	chain := trimmed(form.Chain)
	residueText := trimmed(form.Residue)

	if binder == "" || chain == "" || residueText == "" {
		return nil, domain.Contact{}, domain.NewValidationError(domain.KindMissingField, missingContactField(binder, chain),
			"select binder, chain, and residue")
	}

	residue, err := strconv.Atoi(residueText)
	if err != nil {
		return nil, domain.Contact{}, domain.NewValidationError(domain.KindTypeMismatch, "residue",
			"residue must be a number, got %q", residueText)
	}

	if _, ok := s.Registry.Ligand(binder); !ok {
		return nil, domain.Contact{}, domain.NewValidationError(domain.KindUnknownReference, "binder",
			"binder %q is not a registered ligand", binder)
	}

	if s.Pending.State() == domain.StateAccumulating && s.Pending.Binder != binder {
		return nil, domain.Contact{}, domain.NewValidationError(domain.KindStateConflict, "binder",
			"binder %q is pending; finish current binder or finalize", s.Pending.Binder)
	}

	contact := domain.Contact{Chain: chain, Residue: residue}

	next := s.Clone()
	next.Pending.Binder = binder
	next.Pending.Contacts = append(next.Pending.Contacts, contact)
	return next, contact, nil
}

// FinalizeConstraint commits the pending contacts as a pocket constraint and
// returns the accumulator to idle.
func FinalizeConstraint(s *domain.Session) (*domain.Session, *domain.Pocket, error) {
	if s.Pending.State() == domain.StateIdle || len(s.Pending.Contacts) == 0 {
		return nil, nil, domain.NewValidationError(domain.KindMissingField, "", "no contacts to finalize")
	}

	pocket := domain.Pocket{
		Binder:   s.Pending.Binder,
		Contacts: append([]domain.Contact(nil), s.Pending.Contacts...),
	}

	next := s.Clone()
	next.Document.Constraints = append(next.Document.Constraints, domain.NewPocketConstraint(pocket))
	next.Pending = domain.PendingConstraint{}
	return next, &pocket, nil
}

// DiscardPending returns a session with an idle accumulator.
func DiscardPending(s *domain.Session) *domain.Session {
	next := s.Clone()
	next.Pending = domain.PendingConstraint{}
	return next
}

// validateIDs checks copy bounds and id cardinality and returns the trimmed ids.
func validateIDs(copies int, raw string, limits domain.CopyLimits) ([]string, error) {
	if !limits.Contains(copies) {
		return nil, domain.NewValidationError(domain.KindCardinality, "copies",
			"copies must be between %d and %d, got %d", limits.Min, limits.Max, copies)
	}

	ids := domain.SplitIDs(raw)
	if len(ids) == 0 {
		return nil, domain.NewValidationError(domain.KindMissingField, "ids", "at least one id is required")
	}
	if len(ids) != copies {
		return nil, domain.NewValidationError(domain.KindCardinality, "ids",
			"number of IDs must match copies (%d ids, %d copies)", len(ids), copies)
	}
	for _, id := range ids {
		if id == "" {
			return nil, domain.NewValidationError(domain.KindMissingField, "ids", "ids must not be blank")
		}
	}
	return ids, nil
}

func missingContactField(binder, chain string) string {
	switch {
	case binder == "":
		return "binder"
	case chain == "":
		return "chain"
	default:
		return "residue"
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
