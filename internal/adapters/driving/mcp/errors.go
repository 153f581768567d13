// Package mcp provides an MCP (Model Context Protocol) server adapter for foldcfg.
// It lets AI assistants assemble a document through the same form rules as the TUI.
package mcp

import "errors"

// ErrMissingBuilderService is returned when the builder service is not provided.
var ErrMissingBuilderService = errors.New("mcp: builder service is required")
