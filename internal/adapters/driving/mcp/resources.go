package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for foldcfg resources.
	uriScheme = "foldcfg://"

	documentURI = uriScheme + "document"
	registryURI = uriScheme + "registry"
)

// registryView is the JSON shape of the registry resource.
type registryView struct {
	Chains  []string              `json:"chains"`
	Binders []domain.BinderOption `json:"binders"`
	Pending PendingOutput         `json:"pending"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         documentURI,
		Name:        "document",
		Description: "The document assembled so far, as YAML",
		MIMEType:    "application/yaml",
	}, s.handleDocumentResource)

	s.server.AddResource(&mcp.Resource{
		URI:         registryURI,
		Name:        "registry",
		Description: "Registered chain ids, binder ligands and the pending constraint",
		MIMEType:    "application/json",
	}, s.handleRegistryResource)
}

// handleDocumentResource returns the serialized document.
func (s *Server) handleDocumentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := s.ports.Builder.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/yaml",
			Text:     string(data),
		}},
	}, nil
}

// handleRegistryResource returns the selectable chains and binders.
func (s *Server) handleRegistryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	view := registryView{
		Chains:  s.ports.Builder.ChainOptions(),
		Binders: s.ports.Builder.BinderOptions(),
		Pending: pendingOutput(s.ports.Builder.Pending()),
	}
	if view.Chains == nil {
		view.Chains = []string{}
	}
	if view.Binders == nil {
		view.Binders = []domain.BinderOption{}
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling registry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
