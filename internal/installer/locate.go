package installer

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/manifest"
	"github.com/ruping/ruping-setup/internal/platform"
	"github.com/ruping/ruping-setup/internal/prompt"
)

// locate finds the directory to uninstall. An explicit argument wins;
// otherwise the fixed candidate list is probed in order for the first
// directory holding the executable, and interactive mode gets one
// chance to name a custom path.
func (s *Setup) locate(opts Options) (string, error) {
	if opts.Dir != "" {
		return absolute(opts.Dir)
	}

	candidates := s.candidates
	if candidates == nil {
		candidates = platform.CandidateDirs()
	}

	for _, candidate := range candidates {
		if !containsTarget(candidate) {
			continue
		}

		s.logLocated(candidate)

		return absolute(candidate)
	}

	if opts.Mode == ModeSilent {
		return "", errors.Wrap(ErrNotFound, "no installation in any known location")
	}

	return s.promptForInstallDir()
}

// promptForInstallDir asks the operator once for the installation
// directory. The answer is accepted only when the executable is there.
func (s *Setup) promptForInstallDir() (string, error) {
	entered, err := s.prompter.Input(
		"Enter the "+platform.ProductName+" installation directory",
		"",
	)
	if err != nil || entered == "" {
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return "", err
		}

		return "", errors.Wrap(ErrNotFound, "no installation directory given")
	}

	if !containsTarget(entered) {
		return "", errors.Wrapf(ErrNotFound, "%s does not contain %s", entered, platform.TargetName())
	}

	return absolute(entered)
}

// containsTarget reports whether dir holds the installed executable.
func containsTarget(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, platform.TargetName()))

	return err == nil && !info.IsDir()
}

// logLocated records the find, enriched with manifest data when present.
func (s *Setup) logLocated(dir string) {
	m, err := manifest.Read(dir)
	if err != nil {
		s.log.Info("located installation", "dir", dir)

		return
	}

	s.log.Info("located installation", "dir", dir, "version", m.Version)
}
