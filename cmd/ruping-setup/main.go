// Package main provides the CLI entry point for ruping-setup.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ruping/ruping-setup/internal/config"
	"github.com/ruping/ruping-setup/internal/installer"
	"github.com/ruping/ruping-setup/internal/platform"
	"github.com/ruping/ruping-setup/internal/prompt"
	"github.com/ruping/ruping-setup/pkg/logger"
)

const (
	// ExitCodeOK indicates the pipeline completed.
	ExitCodeOK = 0

	// ExitCodeFailure indicates the pipeline stopped on an error.
	ExitCodeFailure = 1

	// ExitCodeAborted indicates the operator backed out. Nothing failed
	// and nothing was mutated.
	ExitCodeAborted = 2
)

// logFileName is the setup log, written next to the global config.
const logFileName = "setup.log"

var (
	silentFlag  bool
	debugMode   bool
	traceMode   bool
	noColorFlag bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", r)

			exitCode = ExitCodeFailure
		}
	}()

	exitCode = ExitCodeOK

	if err := rootCmd.Execute(); err != nil {
		if installer.IsAbort(err) {
			fmt.Fprintf(os.Stderr, "%v\n", err)

			exitCode = ExitCodeAborted
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			exitCode = ExitCodeFailure
		}
	}

	pauseBeforeExit()

	return exitCode
}

var rootCmd = &cobra.Command{
	Use:   "ruping-setup",
	Short: "Install and uninstall the " + platform.ProductName + " network probe",
	Long: platform.ProductName + ` setup - deploys the ` + platform.ProductName + ` executable onto this
machine, registers its command aliases, puts the installation directory on
the machine PATH, and creates a menu launcher. The uninstall command
reverses all of it.

Both pipelines require administrator privileges.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&silentFlag,
		"silent",
		"s",
		false,
		"Never prompt; use defaults for every decision",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// newLogger creates the file logger under ~/.ruping. Logging must never
// stop the pipeline, so any failure falls back to a no-op logger.
//
//nolint:ireturn // factory selects the logger implementation
func newLogger() logger.Logger {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return logger.NewNoOpLogger()
	}

	logFile := filepath.Join(homeDir, config.GlobalConfigDir, logFileName)

	log, err := logger.NewFileLogger(logFile, debugMode, traceMode)
	if err != nil {
		return logger.NewNoOpLogger()
	}

	return log
}

// loadSetupConfig merges defaults, the global TOML file, environment
// variables, and the given flag overrides.
func loadSetupConfig(log logger.Logger, flags map[string]any) (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}

	cfg, err := loader.Load(flags)
	if err != nil {
		return nil, err
	}

	log.Debug("configuration loaded",
		"dir", cfg.Install.Dir,
		"nopath", cfg.Install.NoPath,
		"silent", cfg.Install.Silent,
	)

	return cfg, nil
}

// runMode decides between prompting and defaults. Without a terminal
// there is nobody to answer prompts, so it degrades to silent.
func runMode(cfg *config.Config) installer.Mode {
	if silentFlag || cfg.Install.Silent || !prompt.IsTerminal() {
		return installer.ModeSilent
	}

	return installer.ModeInteractive
}

// pauseOnExit is set once the run mode is known. Interactive runs hold
// the console open after all output, so it stays readable when the tool
// was launched by double-click.
var pauseOnExit bool

func pauseBeforeExit() {
	if !pauseOnExit || !prompt.IsTerminal() {
		return
	}

	prompt.New().Pause("Press Enter to exit...")
}
