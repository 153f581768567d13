package domain

// AccumulatorState is the state of the pending constraint builder.
type AccumulatorState string

// Accumulator states.
const (
	// StateIdle means no binder is pending.
	StateIdle AccumulatorState = "idle"

	// StateAccumulating means a binder is locked and contacts are staged.
	StateAccumulating AccumulatorState = "accumulating"
)

// PendingConstraint gathers contacts for one binder across several actions.
// Binder is empty while idle.
type PendingConstraint struct {
	Binder   string
	Contacts []Contact
}

// State reports whether a binder is locked.
func (p PendingConstraint) State() AccumulatorState {
	if p.Binder == "" {
		return StateIdle
	}
	return StateAccumulating
}

// Clone returns a deep copy.
func (p PendingConstraint) Clone() PendingConstraint {
	return PendingConstraint{
		Binder:   p.Binder,
		Contacts: append([]Contact(nil), p.Contacts...),
	}
}

// Session is the complete editing state for one document.
// Handlers take a session and return a new one; they never mutate their input.
type Session struct {
	Document Document
	Registry Registry
	Pending  PendingConstraint
}

// NewSession creates an empty session for the given schema version.
func NewSession(version int) *Session {
	return &Session{
		Document: NewDocument(version),
		Registry: NewRegistry(),
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	return &Session{
		Document: s.Document.Clone(),
		Registry: s.Registry.Clone(),
		Pending:  s.Pending.Clone(),
	}
}

// ProteinForm is the raw input of the protein form.
type ProteinForm struct {
	Copies   int
	IDs      string
	Sequence string
	MSA      string
}

// LigandForm is the raw input of the ligand form.
type LigandForm struct {
	Copies int
	IDs    string
	Kind   string
	Value  string
}

// ContactForm is the raw input for one contact. Binder is a raw ligand id.
type ContactForm struct {
	Binder  string
	Chain   string
	Residue string
}

// CopyLimits bounds the copy count of entity forms.
type CopyLimits struct {
	Min int
	Max int
}

// DefaultCopyLimits returns the 1..10 bounds.
func DefaultCopyLimits() CopyLimits {
	return CopyLimits{Min: 1, Max: 10}
}

// Contains reports whether n lies within the limits.
func (l CopyLimits) Contains(n int) bool {
	return n >= l.Min && n <= l.Max
}

// GeneratedDocument is the result of a generate action.
type GeneratedDocument struct {
	// Path is where the document was written.
	Path string

	// Content is the serialized document.
	Content []byte
}
