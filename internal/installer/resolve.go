package installer

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
	"github.com/ruping/ruping-setup/internal/prompt"
)

// resolveDir decides the installation directory. Resolution order: the
// explicit argument, then the configured preset, then the platform
// default (silent mode), then an interactive three-way choice. The
// returned path is absolute and is not required to exist yet.
func (s *Setup) resolveDir(opts Options) (string, error) {
	if opts.Dir != "" {
		return absolute(opts.Dir)
	}

	if s.cfg.Install.Dir != "" {
		return absolute(s.cfg.Install.Dir)
	}

	if opts.Mode == ModeSilent {
		return absolute(platform.DefaultInstallDir())
	}

	return s.promptForDir()
}

// promptForDir presents exactly three choices: the machine default, the
// per-user location, or a custom folder picked interactively.
func (s *Setup) promptForDir() (string, error) {
	defaultDir := platform.DefaultInstallDir()
	userDir := platform.UserInstallDir()

	choice, err := s.prompter.Select("Where should "+platform.ProductName+" be installed?", []prompt.Option{
		{Label: "Machine default (" + defaultDir + ")", Value: "default"},
		{Label: "This user only (" + userDir + ")", Value: "user"},
		{Label: "Custom folder...", Value: "custom"},
	})
	if err != nil {
		return "", cancellation(err)
	}

	switch choice {
	case "default":
		return absolute(defaultDir)
	case "user":
		return absolute(userDir)
	default:
		return s.promptForCustomDir()
	}
}

// promptForCustomDir blocks on the folder picker and appends the
// product name to whatever the operator chose.
func (s *Setup) promptForCustomDir() (string, error) {
	picked, err := s.prompter.PickFolder(
		"Pick the folder to install into",
		filepath.Dir(platform.DefaultInstallDir()),
	)
	if err != nil {
		return "", cancellation(err)
	}

	return absolute(filepath.Join(picked, platform.ProductName))
}

// cancellation maps an operator back-out to ErrCancelled and leaves
// every other prompt failure untouched.
func cancellation(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return ErrCancelled
	}

	return err
}

func absolute(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", dir)
	}

	return abs, nil
}
