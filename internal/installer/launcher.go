package installer

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
)

// launcherContent returns the forwarding script for the platform. Both
// variants pass every received argument through unchanged and propagate
// the executable's exit code.
func launcherContent(goos string) string {
	if goos == "windows" {
		return "@echo off\n\"%~dp0" + platform.TargetName() + "\" %*\n"
	}

	return "#!/bin/sh\nexec \"$(dirname \"$0\")/" + platform.TargetName() + "\" \"$@\"\n"
}

// writeLaunchers writes one forwarding launcher per alias into dir,
// overwriting unconditionally.
func (s *Setup) writeLaunchers(dir string) ([]DeployedFile, error) {
	content := []byte(launcherContent(runtime.GOOS))

	files := make([]DeployedFile, 0, len(platform.Aliases()))

	for _, alias := range platform.Aliases() {
		name := platform.LauncherName(alias)
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, content, executableMode); err != nil {
			return nil, errors.Wrapf(err, "writing launcher %s", path)
		}

		s.log.Debug("wrote alias launcher", "alias", alias, "path", path)

		files = append(files, DeployedFile{Name: name, Size: int64(len(content))})
	}

	return files, nil
}

// removeLaunchers deletes each alias launcher from dir. Missing files
// are skipped silently.
func (s *Setup) removeLaunchers(dir string) error {
	for _, alias := range platform.Aliases() {
		path := filepath.Join(dir, platform.LauncherName(alias))

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return errors.Wrapf(err, "removing launcher %s", path)
		}

		s.log.Debug("removed alias launcher", "path", path)
	}

	return nil
}
