package yamldoc

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.DocumentEncoder = (*Encoder)(nil)

// Style is a formatting directive for an array field.
type Style int

const (
	// StyleBlock writes one element per line.
	StyleBlock Style = iota

	// StyleInline writes the array as a single bracketed list.
	StyleInline
)

// String returns the string representation.
func (s Style) String() string {
	switch s {
	case StyleBlock:
		return "block"
	case StyleInline:
		return "inline"
	default:
		return "unknown"
	}
}

// FieldPath names an array field by its dotted location in the document.
type FieldPath string

// Array fields that carry a style directive.
const (
	PathSequences      FieldPath = "sequences"
	PathConstraints    FieldPath = "constraints"
	PathProteinIDs     FieldPath = "sequences.protein.id"
	PathLigandIDs      FieldPath = "sequences.ligand.id"
	PathPocketContacts FieldPath = "constraints.pocket.contacts"
)

// Options configures an Encoder.
type Options struct {
	// ArrayStyles maps array fields to their style. Unlisted fields are block.
	ArrayStyles map[FieldPath]Style

	// Indent is the number of spaces per nesting level.
	Indent int
}

// DefaultOptions writes identifier lists and contacts inline with 2-space indent.
func DefaultOptions() Options {
	return Options{
		ArrayStyles: map[FieldPath]Style{
			PathProteinIDs:     StyleInline,
			PathLigandIDs:      StyleInline,
			PathPocketContacts: StyleInline,
		},
		Indent: 2,
	}
}

// Encoder renders documents through a yaml.v3 node tree.
type Encoder struct {
	opts Options
}

// NewEncoder creates an encoder. A zero Indent falls back to 2.
func NewEncoder(opts Options) *Encoder {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	if opts.ArrayStyles == nil {
		opts.ArrayStyles = map[FieldPath]Style{}
	}
	return &Encoder{opts: opts}
}

// StyleFor returns the directive for an array field.
func (e *Encoder) StyleFor(path FieldPath) Style {
	return e.opts.ArrayStyles[path]
}

// Encode renders the document.
func (e *Encoder) Encode(doc domain.Document) ([]byte, error) {
	root, err := e.documentNode(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.opts.Indent)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Encoder) documentNode(doc domain.Document) (*yaml.Node, error) {
	sequences := make([]*yaml.Node, 0, len(doc.Sequences))
	for i, entity := range doc.Sequences {
		n, err := e.entityNode(entity)
		if err != nil {
			return nil, fmt.Errorf("sequences[%d]: %w", i, err)
		}
		sequences = append(sequences, n)
	}

	constraints := make([]*yaml.Node, 0, len(doc.Constraints))
	for i, c := range doc.Constraints {
		n, err := e.constraintNode(c)
		if err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, err)
		}
		constraints = append(constraints, n)
	}

	return mapping(
		"version", intNode(doc.Version),
		"sequences", e.seqNode(PathSequences, sequences),
		"constraints", e.seqNode(PathConstraints, constraints),
	), nil
}

func (e *Encoder) entityNode(entity domain.Entity) (*yaml.Node, error) {
	switch entity.Type {
	case domain.EntityProtein:
		p := entity.Protein
		if p == nil {
			return nil, fmt.Errorf("protein entity has no body")
		}
		return mapping(string(domain.EntityProtein), mapping(
			"id", e.stringSeq(PathProteinIDs, p.IDs),
			"sequence", strNode(p.Sequence),
			"msa", strNode(p.MSA),
		)), nil

	case domain.EntityLigand:
		l := entity.Ligand
		if l == nil {
			return nil, fmt.Errorf("ligand entity has no body")
		}
		return mapping(string(domain.EntityLigand), mapping(
			"id", e.stringSeq(PathLigandIDs, l.IDs),
			l.Kind.FieldName(), strNode(l.Value),
		)), nil

	default:
		return nil, fmt.Errorf("unknown entity type %q", entity.Type)
	}
}

func (e *Encoder) constraintNode(c domain.Constraint) (*yaml.Node, error) {
	switch c.Type {
	case domain.ConstraintPocket:
		p := c.Pocket
		if p == nil {
			return nil, fmt.Errorf("pocket constraint has no body")
		}
		contacts := make([]*yaml.Node, 0, len(p.Contacts))
		for _, contact := range p.Contacts {
			pair := e.seqNode(PathPocketContacts, []*yaml.Node{strNode(contact.Chain), intNode(contact.Residue)})
			contacts = append(contacts, pair)
		}
		return mapping(string(domain.ConstraintPocket), mapping(
			"binder", strNode(p.Binder),
			"contacts", e.seqNode(PathPocketContacts, contacts),
		)), nil

	default:
		return nil, fmt.Errorf("unknown constraint type %q", c.Type)
	}
}

func (e *Encoder) stringSeq(path FieldPath, values []string) *yaml.Node {
	items := make([]*yaml.Node, len(values))
	for i, v := range values {
		items[i] = strNode(v)
	}
	return e.seqNode(path, items)
}

func (e *Encoder) seqNode(path FieldPath, items []*yaml.Node) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
	if e.StyleFor(path) == StyleInline {
		n.Style = yaml.FlowStyle
	}
	return n
}

// mapping builds a block mapping from alternating key, value arguments.
// Keys are strings, values are *yaml.Node.
func mapping(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		val, _ := kv[i+1].(*yaml.Node)
		n.Content = append(n.Content, strNode(key), val)
	}
	return n
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}
