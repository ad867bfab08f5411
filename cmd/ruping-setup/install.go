// Package main provides the CLI entry point for ruping-setup.
package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ruping/ruping-setup/internal/color"
	"github.com/ruping/ruping-setup/internal/installer"
	"github.com/ruping/ruping-setup/internal/manifest"
	"github.com/ruping/ruping-setup/internal/platform"
)

var (
	installDirFlag string
	noPathFlag     bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install " + platform.ProductName + " onto this machine",
	Long: `Install ` + platform.ProductName + ` onto this machine.

Deploys the executable and one launcher per command alias into the
installation directory, adds that directory to the machine PATH, and
creates a menu launcher. When no pre-built executable is found next to
the setup tool, the build tool is invoked first.

Without --dir the directory is taken from the configuration, or chosen
interactively, or falls back to the platform default in silent mode.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVarP(
		&installDirFlag,
		"dir",
		"d",
		"",
		"Installation directory (skips the directory prompt)",
	)
	installCmd.Flags().BoolVar(
		&noPathFlag,
		"no-path",
		false,
		"Do not add the installation directory to the machine PATH",
	)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	flags := map[string]any{}
	if cmd.Flags().Changed("dir") {
		flags["install.dir"] = installDirFlag
	}

	if cmd.Flags().Changed("no-path") {
		flags["install.nopath"] = noPathFlag
	}

	if cmd.Flags().Changed("silent") {
		flags["install.silent"] = silentFlag
	}

	cfg, err := loadSetupConfig(log, flags)
	if err != nil {
		return err
	}

	mode := runMode(cfg)
	pauseOnExit = mode == installer.ModeInteractive

	result, err := installer.New(cfg, log).Install(cmd.Context(), installer.Options{
		Dir:     installDirFlag,
		NoPath:  cfg.Install.NoPath,
		Mode:    mode,
		Version: version,
	})
	if err != nil {
		return err
	}

	printInstallSummary(result)

	return nil
}

func printInstallSummary(result *installer.InstallResult) {
	theme := color.NewTheme(color.Profile(noColorFlag))

	fmt.Println(theme.Success.Render(platform.ProductName + " installed to " + result.Dir))

	switch result.Relation {
	case manifest.RelationUpgrade:
		fmt.Println(theme.Muted.Render("Upgraded an existing installation."))
	case manifest.RelationDowngrade:
		fmt.Println(theme.Warning.Render("Replaced a newer installed version."))
	case manifest.RelationReinstall:
		fmt.Println(theme.Muted.Render("Reinstalled the same version."))
	case manifest.RelationUnknown:
		fmt.Println(theme.Muted.Render("Replaced an existing installation."))
	}

	if result.Built {
		fmt.Println(theme.Muted.Render("No pre-built executable was found; it was built from source."))
	}

	fmt.Println()
	fmt.Print(deployedTable(result.Deployed, theme))
	fmt.Println()

	switch {
	case result.PathSkipped:
		fmt.Println(theme.Warning.Render("The machine PATH was left unchanged (--no-path)."))
	case result.PathChanged:
		fmt.Println("Added " + result.Dir + " to the machine PATH.")
		fmt.Println(theme.Muted.Render("Open a new terminal for the change to take effect."))
	default:
		fmt.Println(theme.Muted.Render("The machine PATH already contains the installation directory."))
	}

	fmt.Println("Run any of: " + strings.Join(platform.Aliases(), ", "))
}

// deployedTable renders the deployed files with human-readable sizes.
func deployedTable(files []installer.DeployedFile, theme color.Theme) string {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{
		theme.Header.Render("File"),
		theme.Header.Render("Size"),
	})

	for _, f := range files {
		_ = t.Append([]string{f.Name, humanize.Bytes(uint64(f.Size))})
	}

	_ = t.Render()

	return buf.String()
}
