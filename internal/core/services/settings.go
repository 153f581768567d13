package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/foldcfg/internal/core/domain"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driven"
	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputPath      = "output.path"
	keyDocumentVersion = "document.version"
	keyFormMaxCopies   = "form.max_copies"
)

// maxCopiesCeiling is the largest copy bound accepted from configuration.
const maxCopiesCeiling = 100

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Path: s.getString(keyOutputPath, defaults.Output.Path),
		},
		Document: domain.DocumentSettings{
			Version: s.getPositiveInt(keyDocumentVersion, defaults.Document.Version),
		},
		Form: domain.FormSettings{
			MaxCopies: s.getPositiveInt(keyFormMaxCopies, defaults.Form.MaxCopies),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputPath, settings.Output.Path); err != nil {
		return fmt.Errorf("save output path: %w", err)
	}
	if err := s.configStore.Set(keyDocumentVersion, settings.Document.Version); err != nil {
		return fmt.Errorf("save document version: %w", err)
	}
	if err := s.configStore.Set(keyFormMaxCopies, settings.Form.MaxCopies); err != nil {
		return fmt.Errorf("save max copies: %w", err)
	}
	return nil
}

// SetOutputPath updates the output file path.
func (s *SettingsService) SetOutputPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: output path is empty", domain.ErrMissingField)
	}
	if err := s.configStore.Set(keyOutputPath, path); err != nil {
		return fmt.Errorf("save output path: %w", err)
	}
	return nil
}

// SetMaxCopies updates the copy count upper bound.
func (s *SettingsService) SetMaxCopies(n int) error {
	if n < 1 || n > maxCopiesCeiling {
		return fmt.Errorf("%w: max copies must be between 1 and %d", domain.ErrCardinality, maxCopiesCeiling)
	}
	if err := s.configStore.Set(keyFormMaxCopies, n); err != nil {
		return fmt.Errorf("save max copies: %w", err)
	}
	return nil
}

// Validate checks that the stored settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	var errs []error
	if strings.HasSuffix(settings.Output.Path, "/") {
		errs = append(errs, fmt.Errorf("output path %q is a directory", settings.Output.Path))
	}
	if settings.Form.MaxCopies > maxCopiesCeiling {
		errs = append(errs, fmt.Errorf("max copies %d exceeds %d", settings.Form.MaxCopies, maxCopiesCeiling))
	}
	return errors.Join(errs...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := strings.TrimSpace(s.configStore.GetString(key)); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getPositiveInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}
