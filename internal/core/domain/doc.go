// Package domain defines the core entities for foldcfg.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: the configuration being assembled (sequences + constraints)
//   - Entity: a tagged Protein or Ligand
//   - Constraint: a tagged Pocket
//   - Registry: chain ids and ligand info feeding selection controls
//   - Session: Document, Registry and the pending constraint together
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
