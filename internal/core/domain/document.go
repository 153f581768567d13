package domain

// SchemaVersion is the default version tag written at the top of every document.
const SchemaVersion = 1

// EmptyMSA is the sentinel written when no MSA path is supplied.
const EmptyMSA = "empty"

// Document is the configuration document assembled during a session.
// Sequences and Constraints keep insertion order.
type Document struct {
	// Version is the schema tag. It never changes within a session.
	Version int

	// Sequences holds protein and ligand entities in the order they were added.
	Sequences []Entity

	// Constraints holds committed constraints in the order they were finalised.
	Constraints []Constraint
}

// NewDocument creates an empty document with the given schema version.
func NewDocument(version int) Document {
	if version <= 0 {
		version = SchemaVersion
	}
	return Document{
		Version:     version,
		Sequences:   []Entity{},
		Constraints: []Constraint{},
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		Version:     d.Version,
		Sequences:   make([]Entity, len(d.Sequences)),
		Constraints: make([]Constraint, len(d.Constraints)),
	}
	for i, e := range d.Sequences {
		out.Sequences[i] = e.Clone()
	}
	for i, c := range d.Constraints {
		out.Constraints[i] = c.Clone()
	}
	return out
}

// EntityType tags which variant an Entity holds.
type EntityType string

// Entity variants.
const (
	EntityProtein EntityType = "protein"
	EntityLigand  EntityType = "ligand"
)

// String returns the string representation.
func (t EntityType) String() string {
	return string(t)
}

// Entity is a tagged variant: exactly one of Protein or Ligand is set,
// matching Type.
type Entity struct {
	Type    EntityType
	Protein *Protein
	Ligand  *Ligand
}

// NewProteinEntity wraps a protein as an entity.
func NewProteinEntity(p Protein) Entity {
	return Entity{Type: EntityProtein, Protein: &p}
}

// NewLigandEntity wraps a ligand as an entity.
func NewLigandEntity(l Ligand) Entity {
	return Entity{Type: EntityLigand, Ligand: &l}
}

// IDs returns the chain identifiers of the wrapped entity.
func (e Entity) IDs() []string {
	switch e.Type {
	case EntityProtein:
		if e.Protein != nil {
			return e.Protein.IDs
		}
	case EntityLigand:
		if e.Ligand != nil {
			return e.Ligand.IDs
		}
	}
	return nil
}

// Clone returns a deep copy of the entity.
func (e Entity) Clone() Entity {
	out := Entity{Type: e.Type}
	if e.Protein != nil {
		p := *e.Protein
		p.IDs = append([]string(nil), e.Protein.IDs...)
		out.Protein = &p
	}
	if e.Ligand != nil {
		l := *e.Ligand
		l.IDs = append([]string(nil), e.Ligand.IDs...)
		out.Ligand = &l
	}
	return out
}

// Protein is a polymer entity with one chain per id.
type Protein struct {
	// IDs are the chain identifiers, one per copy.
	IDs []string

	// Sequence is the residue sequence with all whitespace removed.
	Sequence string

	// MSA is a path to an alignment file, or EmptyMSA.
	MSA string
}

// Ligand is a small-molecule entity described by a CCD code or a SMILES string.
type Ligand struct {
	// IDs are the chain identifiers, one per copy.
	IDs []string

	// Kind selects how Value is interpreted.
	Kind LigandKind

	// Value is the CCD code or SMILES string.
	Value string
}

// LigandKind identifies how a ligand is described.
type LigandKind string

// Available ligand kinds.
const (
	// LigandKindCCD is a chemical component dictionary code.
	LigandKindCCD LigandKind = "CCD"

	// LigandKindSMILES is a SMILES line notation string.
	LigandKindSMILES LigandKind = "SMILES"
)

// AllLigandKinds returns the kinds in selector order.
func AllLigandKinds() []LigandKind {
	return []LigandKind{LigandKindCCD, LigandKindSMILES}
}

// ParseLigandKind converts user input to a LigandKind, ignoring case and
// surrounding whitespace.
func ParseLigandKind(s string) (LigandKind, bool) {
	k := LigandKind(upper(trim(s)))
	return k, k.IsValid()
}

// IsValid returns true if the kind is recognised.
func (k LigandKind) IsValid() bool {
	switch k {
	case LigandKindCCD, LigandKindSMILES:
		return true
	default:
		return false
	}
}

// String returns the upper-case name used in registries and labels.
func (k LigandKind) String() string {
	return string(k)
}

// FieldName returns the lower-case key the kind is written under.
func (k LigandKind) FieldName() string {
	return lower(string(k))
}

// ConstraintType tags which variant a Constraint holds.
type ConstraintType string

// Constraint variants.
const (
	ConstraintPocket ConstraintType = "pocket"
)

// Constraint is a tagged variant. Pocket is the only kind today.
type Constraint struct {
	Type   ConstraintType
	Pocket *Pocket
}

// NewPocketConstraint wraps a pocket as a constraint.
func NewPocketConstraint(p Pocket) Constraint {
	return Constraint{Type: ConstraintPocket, Pocket: &p}
}

// Clone returns a deep copy of the constraint.
func (c Constraint) Clone() Constraint {
	out := Constraint{Type: c.Type}
	if c.Pocket != nil {
		p := *c.Pocket
		p.Contacts = append([]Contact(nil), c.Pocket.Contacts...)
		out.Pocket = &p
	}
	return out
}

// Pocket ties a binder entity to residues it should contact.
type Pocket struct {
	// Binder is a registered ligand id.
	Binder string

	// Contacts is never empty once committed.
	Contacts []Contact
}

// Contact is a single (chain, residue) location.
type Contact struct {
	Chain   string
	Residue int
}
