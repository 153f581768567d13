package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where documents are written and how forms are validated.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOutputCmd = &cobra.Command{
	Use:   "output <path>",
	Short: "Set the output file path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsOutput,
}

var settingsMaxCopiesCmd = &cobra.Command{
	Use:   "max-copies <n>",
	Short: "Set the largest accepted copy count",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsMaxCopies,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOutputCmd)
	settingsCmd.AddCommand(settingsMaxCopiesCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Path: %s\n", settings.Output.Path)
	cmd.Println()

	cmd.Println("[Document]")
	cmd.Printf("  Version: %d\n", settings.Document.Version)
	cmd.Println()

	cmd.Println("[Form]")
	limits := settings.Form.CopyLimits()
	cmd.Printf("  Copies: %d to %d\n", limits.Min, limits.Max)
	cmd.Println()

	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsOutput(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.SetOutputPath(args[0]); err != nil {
		return fmt.Errorf("failed to set output path: %w", err)
	}
	cmd.Printf("Output path set to: %s\n", args[0])
	return nil
}

func runSettingsMaxCopies(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	if err := svc.SetMaxCopies(n); err != nil {
		return fmt.Errorf("failed to set max copies: %w", err)
	}
	cmd.Printf("Max copies set to: %d\n", n)
	return nil
}
