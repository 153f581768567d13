// Package tui provides an interactive terminal user interface for foldcfg.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Builder assembles the document from form submissions.
	Builder driving.BuilderService

	// Settings exposes application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(builder driving.BuilderService, settings driving.SettingsService) *Ports {
	return &Ports{
		Builder:  builder,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Builder == nil {
		return ErrMissingBuilderService
	}
	return nil
}
