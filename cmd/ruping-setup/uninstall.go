// Package main provides the CLI entry point for ruping-setup.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruping/ruping-setup/internal/color"
	"github.com/ruping/ruping-setup/internal/installer"
	"github.com/ruping/ruping-setup/internal/platform"
)

var uninstallDirFlag string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove " + platform.ProductName + " from this machine",
	Long: `Remove ` + platform.ProductName + ` from this machine.

Locates the installation, removes its PATH entry, alias launchers, and
menu launcher, then deletes the installation directory. The directory
deletion is best effort: a locked file leaves the directory behind but
never restores the PATH entry or launchers.

Without --dir the known installation locations are probed in order.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)

	uninstallCmd.Flags().StringVarP(
		&uninstallDirFlag,
		"dir",
		"d",
		"",
		"Installation directory (skips the location probe)",
	)
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	flags := map[string]any{}
	if cmd.Flags().Changed("silent") {
		flags["install.silent"] = silentFlag
	}

	cfg, err := loadSetupConfig(log, flags)
	if err != nil {
		return err
	}

	mode := runMode(cfg)
	pauseOnExit = mode == installer.ModeInteractive

	result, err := installer.New(cfg, log).Uninstall(cmd.Context(), installer.Options{
		Dir:  uninstallDirFlag,
		Mode: mode,
	})
	if err != nil {
		return err
	}

	printUninstallSummary(result)

	return nil
}

func printUninstallSummary(result *installer.UninstallResult) {
	theme := color.NewTheme(color.Profile(noColorFlag))

	fmt.Println(theme.Success.Render(platform.ProductName + " removed from " + result.Dir))

	if result.PathRemoved {
		fmt.Println("Removed " + result.Dir + " from the machine PATH.")
	}

	for _, warning := range result.Warnings {
		fmt.Println(theme.Warning.Render("Warning: " + warning))
	}
}
