package mcp

import (
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Builder assembles the document from tool calls.
	Builder driving.BuilderService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Builder == nil {
		return ErrMissingBuilderService
	}
	return nil
}
