package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/logger"
)

// ProteinInput is the input schema for the add_protein tool.
type ProteinInput struct {
	Copies   int    `json:"copies" jsonschema:"number of copies; must equal the number of ids"`
	IDs      string `json:"ids" jsonschema:"comma-separated chain ids, one per copy, e.g. A,B"`
	Sequence string `json:"sequence" jsonschema:"amino acid sequence; whitespace is removed"`
	MSA      string `json:"msa,omitempty" jsonschema:"path to an alignment file (default empty)"`
}

// ProteinOutput is the output schema for the add_protein tool.
type ProteinOutput struct {
	IDs       []string `json:"ids"`
	Sequence  string   `json:"sequence"`
	MSA       string   `json:"msa"`
	Sequences int      `json:"sequences"`
}

// LigandInput is the input schema for the add_ligand tool.
type LigandInput struct {
	Copies int    `json:"copies" jsonschema:"number of copies; must equal the number of ids"`
	IDs    string `json:"ids" jsonschema:"comma-separated ligand ids, one per copy"`
	Kind   string `json:"kind" jsonschema:"CCD or SMILES"`
	Value  string `json:"value" jsonschema:"the CCD code or SMILES string"`
}

// LigandOutput is the output schema for the add_ligand tool.
type LigandOutput struct {
	IDs       []string `json:"ids"`
	Kind      string   `json:"kind"`
	Value     string   `json:"value"`
	Sequences int      `json:"sequences"`
}

// ContactInput is the input schema for the add_contact tool.
type ContactInput struct {
	Binder  string `json:"binder" jsonschema:"registered ligand id the pocket binds"`
	Chain   string `json:"chain" jsonschema:"registered protein chain id"`
	Residue string `json:"residue" jsonschema:"residue index as an integer string, e.g. 42"`
}

// ContactOutput is one contact in tool results.
type ContactOutput struct {
	Chain   string `json:"chain"`
	Residue int    `json:"residue"`
}

// PendingOutput describes the constraint being accumulated.
type PendingOutput struct {
	State    string          `json:"state"`
	Binder   string          `json:"binder,omitempty"`
	Contacts []ContactOutput `json:"contacts"`
}

// PocketOutput is the output schema for the finalize_constraint tool.
type PocketOutput struct {
	Binder      string          `json:"binder"`
	Contacts    []ContactOutput `json:"contacts"`
	Constraints int             `json:"constraints"`
}

// DocumentOutput carries serialized YAML.
type DocumentOutput struct {
	Path string `json:"path,omitempty"`
	YAML string `json:"yaml"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_protein",
		Description: "Add a protein entity; copies must match the number of ids",
	}, s.handleAddProtein)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_ligand",
		Description: "Add a ligand entity given as a CCD code or SMILES string",
	}, s.handleAddLigand)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Stage a residue contact for the pending pocket constraint of a binder",
	}, s.handleAddContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "finalize_constraint",
		Description: "Commit the pending pocket constraint",
	}, s.handleFinalizeConstraint)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "discard_pending",
		Description: "Drop the pending binder and its staged contacts",
	}, s.handleDiscardPending)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_yaml",
		Description: "Serialize the current document without writing it",
	}, s.handlePreviewYAML)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_yaml",
		Description: "Serialize the current document and write it to the output path",
	}, s.handleGenerateYAML)
}

func (s *Server) handleAddProtein(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ProteinInput,
) (*mcp.CallToolResult, ProteinOutput, error) {
	logger.Debug("mcp add_protein copies=%d ids=%q", input.Copies, input.IDs)
	p, err := s.ports.Builder.AddProtein(domain.ProteinForm{
		Copies:   input.Copies,
		IDs:      input.IDs,
		Sequence: input.Sequence,
		MSA:      input.MSA,
	})
	if err != nil {
		return nil, ProteinOutput{}, err
	}
	return nil, ProteinOutput{
		IDs:       p.IDs,
		Sequence:  p.Sequence,
		MSA:       p.MSA,
		Sequences: len(s.ports.Builder.Snapshot().Document.Sequences),
	}, nil
}

func (s *Server) handleAddLigand(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LigandInput,
) (*mcp.CallToolResult, LigandOutput, error) {
	logger.Debug("mcp add_ligand copies=%d ids=%q kind=%q", input.Copies, input.IDs, input.Kind)
	l, err := s.ports.Builder.AddLigand(domain.LigandForm{
		Copies: input.Copies,
		IDs:    input.IDs,
		Kind:   input.Kind,
		Value:  input.Value,
	})
	if err != nil {
		return nil, LigandOutput{}, err
	}
	return nil, LigandOutput{
		IDs:       l.IDs,
		Kind:      l.Kind.String(),
		Value:     l.Value,
		Sequences: len(s.ports.Builder.Snapshot().Document.Sequences),
	}, nil
}

func (s *Server) handleAddContact(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ContactInput,
) (*mcp.CallToolResult, PendingOutput, error) {
	logger.Debug("mcp add_contact binder=%q chain=%q residue=%q", input.Binder, input.Chain, input.Residue)
	_, err := s.ports.Builder.AddContact(domain.ContactForm{
		Binder:  input.Binder,
		Chain:   input.Chain,
		Residue: input.Residue,
	})
	if err != nil {
		return nil, PendingOutput{}, err
	}
	return nil, pendingOutput(s.ports.Builder.Pending()), nil
}

func (s *Server) handleFinalizeConstraint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, PocketOutput, error) {
	p, err := s.ports.Builder.FinalizeConstraint()
	if err != nil {
		return nil, PocketOutput{}, err
	}
	return nil, PocketOutput{
		Binder:      p.Binder,
		Contacts:    contactsOutput(p.Contacts),
		Constraints: len(s.ports.Builder.Snapshot().Document.Constraints),
	}, nil
}

func (s *Server) handleDiscardPending(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, PendingOutput, error) {
	s.ports.Builder.DiscardPending()
	return nil, pendingOutput(s.ports.Builder.Pending()), nil
}

func (s *Server) handlePreviewYAML(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	data, err := s.ports.Builder.Render()
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, DocumentOutput{YAML: string(data)}, nil
}

func (s *Server) handleGenerateYAML(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Builder.Generate()
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, DocumentOutput{Path: doc.Path, YAML: string(doc.Content)}, nil
}

func pendingOutput(p domain.PendingConstraint) PendingOutput {
	return PendingOutput{
		State:    string(p.State()),
		Binder:   p.Binder,
		Contacts: contactsOutput(p.Contacts),
	}
}

func contactsOutput(contacts []domain.Contact) []ContactOutput {
	out := make([]ContactOutput, len(contacts))
	for i, c := range contacts {
		out[i] = ContactOutput{Chain: c.Chain, Residue: c.Residue}
	}
	return out
}
