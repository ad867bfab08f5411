package installer

import (
	"context"
	"fmt"

	"github.com/ruping/ruping-setup/internal/platform"
	"github.com/ruping/ruping-setup/internal/privilege"
)

// Uninstall runs the uninstall pipeline: locate, confirm, then reverse
// the PATH mutation, alias launchers, launcher entry, and finally the
// install directory itself. The directory deletion is best effort: a
// locked file must not leave the PATH and launcher reservations behind,
// so earlier removals stand and the failure surfaces as a warning.
func (s *Setup) Uninstall(_ context.Context, opts Options) (*UninstallResult, error) {
	if err := privilege.Require(s.checker); err != nil {
		return nil, err
	}

	dir, err := s.locate(opts)
	if err != nil {
		return nil, err
	}

	if opts.Mode != ModeSilent {
		confirmed, err := s.prompter.Confirm(
			fmt.Sprintf("Remove %s from %s?", platform.ProductName, dir),
			false,
		)
		if err != nil {
			return nil, cancellation(err)
		}

		if !confirmed {
			return nil, ErrDeclined
		}
	}

	s.log.Info("uninstalling", "dir", dir, "mode", opts.Mode.String())

	result := &UninstallResult{Dir: dir}

	removed, err := s.path.Remove(dir)
	if err != nil {
		return nil, err
	}

	result.PathRemoved = removed

	if err := s.removeLaunchers(dir); err != nil {
		return nil, err
	}

	if err := s.shortcuts.Remove(); err != nil {
		return nil, err
	}

	if err := s.removeDir(dir); err != nil {
		warning := fmt.Sprintf("could not delete %s: %v", dir, err)
		result.Warnings = append(result.Warnings, warning)

		s.log.Error("directory deletion incomplete", "dir", dir, "error", err)
	}

	s.log.Info("uninstall complete", "dir", dir, "warnings", len(result.Warnings))

	return result, nil
}
