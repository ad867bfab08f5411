package installer

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
)

// ensureArtifact returns the path of a deployable executable, building
// one when no pre-built artifact exists. The returned bool reports
// whether a build was run. Only the install pipeline calls this; the
// uninstaller never builds.
func (s *Setup) ensureArtifact(ctx context.Context) (string, bool, error) {
	if path, ok := s.findArtifact(); ok {
		s.log.Debug("using pre-built executable", "path", path)

		return path, false, nil
	}

	command := s.cfg.Build.Command
	args := s.cfg.Build.Args

	if err := s.tools.RequireTool(command); err != nil {
		return "", false, errors.WithSecondaryError(ErrBuildFailed, err)
	}

	s.log.Info("no pre-built executable, invoking build tool",
		"command", command,
		"args", strings.Join(args, " "),
	)

	result, err := s.runner.Run(ctx, command, args...)
	if err != nil {
		return "", false, errors.WithSecondaryError(ErrBuildFailed, err)
	}

	if !result.Success() {
		s.log.Error("build tool failed",
			"exitCode", result.ExitCode,
			"stderr", result.Stderr,
		)

		return "", false, errors.Wrapf(ErrBuildFailed, "%s exited with code %d", command, result.ExitCode)
	}

	path, ok := s.findArtifact()
	if !ok {
		return "", false, errors.Wrap(ErrBuildFailed, "build succeeded but produced no executable")
	}

	return path, true, nil
}

// findArtifact probes the fixed relative artifact locations in order.
func (s *Setup) findArtifact() (string, bool) {
	candidates := s.artifacts
	if candidates == nil {
		candidates = platform.ArtifactCandidates()
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		return candidate, true
	}

	return "", false
}
