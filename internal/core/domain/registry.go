package domain

import "fmt"

// LigandInfo is the registry record for a single ligand id.
type LigandInfo struct {
	Kind  LigandKind
	Value string
}

// BinderOption is a selectable binder. ID is the raw ligand id;
// Label is display text only and is never parsed back.
type BinderOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Registry holds the derived indexes used to populate selection controls.
type Registry struct {
	// ProteinIDs is append-only and may contain duplicates.
	ProteinIDs []string

	ligands     map[string]LigandInfo
	ligandOrder []string
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return Registry{
		ProteinIDs: []string{},
		ligands:    make(map[string]LigandInfo),
	}
}

// AddProteinIDs appends ids to the chain list.
func (r *Registry) AddProteinIDs(ids ...string) {
	r.ProteinIDs = append(r.ProteinIDs, ids...)
}

// RegisterLigand records or overwrites the info for a ligand id.
// A re-registered id keeps its original position in BinderOptions.
func (r *Registry) RegisterLigand(id string, info LigandInfo) {
	if r.ligands == nil {
		r.ligands = make(map[string]LigandInfo)
	}
	if _, ok := r.ligands[id]; !ok {
		r.ligandOrder = append(r.ligandOrder, id)
	}
	r.ligands[id] = info
}

// Ligand returns the info registered for id.
func (r Registry) Ligand(id string) (LigandInfo, bool) {
	info, ok := r.ligands[id]
	return info, ok
}

// LigandCount returns the number of distinct ligand ids.
func (r Registry) LigandCount() int {
	return len(r.ligands)
}

// ChainOptions returns a copy of the protein ids for chain selectors.
func (r Registry) ChainOptions() []string {
	return append([]string{}, r.ProteinIDs...)
}

// BinderOptions returns one option per registered ligand id.
func (r Registry) BinderOptions() []BinderOption {
	opts := make([]BinderOption, 0, len(r.ligandOrder))
	for _, id := range r.ligandOrder {
		opts = append(opts, BinderOption{ID: id, Label: BinderLabel(id, r.ligands[id])})
	}
	return opts
}

// BinderLabel formats the display label for a ligand id.
func BinderLabel(id string, info LigandInfo) string {
	return fmt.Sprintf("%s (%s: %s)", id, info.Kind, info.Value)
}

// Clone returns a deep copy of the registry.
func (r Registry) Clone() Registry {
	out := Registry{
		ProteinIDs:  append([]string{}, r.ProteinIDs...),
		ligands:     make(map[string]LigandInfo, len(r.ligands)),
		ligandOrder: append([]string(nil), r.ligandOrder...),
	}
	for k, v := range r.ligands {
		out.ligands[k] = v
	}
	return out
}
