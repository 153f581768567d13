package domain

// DefaultOutputPath is the relative path documents are written to.
const DefaultOutputPath = "config.yaml"

// AppSettings holds the persisted application configuration.
type AppSettings struct {
	Output   OutputSettings
	Document DocumentSettings
	Form     FormSettings
}

// OutputSettings controls where generated documents go.
type OutputSettings struct {
	// Path is the output file, overwritten on every generate.
	Path string
}

// DocumentSettings controls document-level values.
type DocumentSettings struct {
	// Version is the schema tag written at the top of the document.
	Version int
}

// FormSettings controls form input bounds.
type FormSettings struct {
	// MaxCopies is the upper bound for protein and ligand copy counts.
	MaxCopies int
}

// CopyLimits returns the copy bounds implied by the settings.
func (f FormSettings) CopyLimits() CopyLimits {
	limits := DefaultCopyLimits()
	if f.MaxCopies >= limits.Min {
		limits.Max = f.MaxCopies
	}
	return limits
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Path: DefaultOutputPath,
		},
		Document: DocumentSettings{
			Version: SchemaVersion,
		},
		Form: FormSettings{
			MaxCopies: DefaultCopyLimits().Max,
		},
	}
}
