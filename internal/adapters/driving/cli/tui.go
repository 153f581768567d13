package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/tui"
	"github.com/custodia-labs/foldcfg/internal/logger"
)

// isTerminal reports whether fd is an interactive terminal.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

var errNotTerminal = errors.New("the form builder needs an interactive terminal; use 'foldcfg mcp serve' for scripted use")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive form builder",
	Long: `Launch the interactive terminal form builder.

Tabs:
  Proteins     - add protein chains (copies, ids, sequence, msa)
  Ligands      - add ligands by CCD code or SMILES
  Constraints  - stage residue contacts for a binder, then finalize a pocket
  Preview      - view the YAML document

Controls:
  tab/shift+tab   - Move between fields
  ←/→             - Change a selection
  enter           - Add / close dialog
  ctrl+f          - Finalize pocket
  ctrl+d          - Discard pending contacts
  ctrl+g          - Generate and save YAML
  ctrl+n/ctrl+p   - Switch tabs
  ctrl+c          - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	builder, err := builderService()
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	// Logs would corrupt the alternate screen, so send them to a file.
	if logger.IsVerbose() && services.LogPath != "" {
		closeLog, logErr := logger.ToFile(services.LogPath)
		if logErr != nil {
			return fmt.Errorf("opening log file: %w", logErr)
		}
		defer func() { _ = closeLog() }()
	}

	ports := tui.NewPorts(builder, services.Settings)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
