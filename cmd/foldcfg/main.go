// Command foldcfg builds structure prediction input documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/foldcfg/internal/adapters/driven/config/file"
	"github.com/custodia-labs/foldcfg/internal/adapters/driven/encoding/yamldoc"
	"github.com/custodia-labs/foldcfg/internal/adapters/driven/output"
	"github.com/custodia-labs/foldcfg/internal/adapters/driving/cli"
	"github.com/custodia-labs/foldcfg/internal/core/services"
	"github.com/custodia-labs/foldcfg/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

const logFileName = "foldcfg.log"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the driven adapters into the core services.
func newServices(opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		dir = d
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	logger.Debug("config loaded from %s", dir)

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	builderOpts := services.BuilderOptionsFromSettings(settings)
	if opts.OutputPath != "" {
		builderOpts.OutputPath = opts.OutputPath
	}

	builder := services.NewBuilderService(
		yamldoc.NewEncoder(yamldoc.DefaultOptions()),
		output.NewFileWriter(),
		builderOpts,
	)

	return &cli.Services{
		Builder:  builder,
		Settings: settingsSvc,
		LogPath:  filepath.Join(dir, logFileName),
	}, nil
}
