// Package config provides configuration loading for the setup tool.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidPermissions is returned when the config file is world-writable.
var ErrInvalidPermissions = errors.New("config file has insecure permissions")

const (
	// GlobalConfigDir is the directory name for the global configuration,
	// relative to the user home directory.
	GlobalConfigDir = ".ruping"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "setup.toml"

	// envPrefix namespaces the environment variable overrides.
	envPrefix = "RUPING_SETUP_"
)

// Config holds every setting the setup pipeline reads.
type Config struct {
	Install InstallConfig `koanf:"install"`
	Build   BuildConfig   `koanf:"build"`
}

// InstallConfig configures installation behavior.
type InstallConfig struct {
	// Dir presets the installation directory, skipping resolution.
	Dir string `koanf:"dir"`

	// NoPath suppresses the machine PATH mutation.
	NoPath bool `koanf:"nopath"`

	// Silent disables every operator prompt and uses defaults.
	Silent bool `koanf:"silent"`
}

// BuildConfig configures the external build collaborator invoked when
// no pre-built executable is found.
type BuildConfig struct {
	Command string   `koanf:"command"`
	Args    []string `koanf:"args"`
}

// Loader loads configuration from all sources with precedence.
// Precedence order (highest to lowest):
//  1. CLI flags
//  2. Environment variables (RUPING_SETUP_*)
//  3. Global config (~/.ruping/setup.toml)
//  4. Defaults
type Loader struct {
	k       *koanf.Koanf
	homeDir string
}

// NewLoader creates a Loader rooted at the user home directory.
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return NewLoaderWithHome(homeDir), nil
}

// NewLoaderWithHome creates a Loader with a custom home directory (for testing).
func NewLoaderWithHome(homeDir string) *Loader {
	return &Loader{
		k:       koanf.New("."),
		homeDir: homeDir,
	}
}

// GlobalConfigPath returns the path of the global configuration file.
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// Load merges all configuration sources and unmarshals the result.
func (l *Loader) Load(flags map[string]any) (*Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// defaults returns the lowest-priority configuration values.
func defaults() map[string]any {
	return map[string]any{
		"install.dir":    "",
		"install.nopath": false,
		"install.silent": false,
		"build.command":  "cargo",
		"build.args":     []string{"build", "--release"},
	}
}

// loadTOMLFile merges a TOML file into the current koanf state.
func (l *Loader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files: the tool runs elevated.
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform transforms environment variable names to config paths.
// RUPING_SETUP_INSTALL_SILENT → install.silent
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}
