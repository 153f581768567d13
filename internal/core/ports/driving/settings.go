package driving

import "github.com/custodia-labs/foldcfg/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputPath updates the output file path.
	SetOutputPath(path string) error

	// SetMaxCopies updates the copy count upper bound.
	SetMaxCopies(n int) error

	// Validate checks that the stored settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
