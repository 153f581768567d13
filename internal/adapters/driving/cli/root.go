// Package cli provides the cobra command tree for foldcfg.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foldcfg/internal/core/ports/driving"
	"github.com/custodia-labs/foldcfg/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Services are the driving ports the commands run against.
type Services struct {
	Builder  driving.BuilderService
	Settings driving.SettingsService

	// LogPath receives verbose logs while the TUI owns the terminal.
	LogPath string
}

// Options carries the global flag values into the service factory.
type Options struct {
	ConfigDir  string
	OutputPath string
	Verbose    bool
}

// ServiceFactory builds services once flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	serviceFactory ServiceFactory
	services       *Services

	flagVerbose   bool
	flagOutput    string
	flagConfigDir string
)

var errNoBuilder = errors.New("builder service not configured")
var errNoSettings = errors.New("settings service not configured")

var rootCmd = &cobra.Command{
	Use:   "foldcfg",
	Short: "Build structure prediction input files interactively",
	Long: `foldcfg assembles a structure prediction input document from proteins,
ligands and pocket constraints, then writes it as YAML.

Run without a subcommand to open the interactive form builder.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output file path (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.foldcfg)")
}

// setup applies global flags and builds services.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)
	if serviceFactory == nil {
		return nil
	}
	s, err := serviceFactory(Options{
		ConfigDir:  flagConfigDir,
		OutputPath: flagOutput,
		Verbose:    flagVerbose,
	})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	services = s
	return nil
}

// SetServiceFactory registers the function that wires services.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices installs ready-made services, bypassing the factory.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func builderService() (driving.BuilderService, error) {
	if services == nil || services.Builder == nil {
		return nil, errNoBuilder
	}
	return services.Builder, nil
}

func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errNoSettings
	}
	return services.Settings, nil
}
