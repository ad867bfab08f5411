package installer

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
)

const (
	installDirMode = 0o755
	executableMode = 0o755
)

// deploy creates the install directory if needed and copies the
// executable into it, overwriting any previous version. The source is
// never moved: repeated installs from the same build tree keep working.
func (s *Setup) deploy(artifact, dir string) (DeployedFile, error) {
	if err := os.MkdirAll(dir, installDirMode); err != nil {
		return DeployedFile{}, errors.Wrapf(err, "creating install directory %s", dir)
	}

	target := filepath.Join(dir, platform.TargetName())

	size, err := copyFile(artifact, target)
	if err != nil {
		return DeployedFile{}, errors.Wrapf(err, "deploying %s", target)
	}

	s.log.Info("deployed executable", "from", artifact, "to", target, "bytes", size)

	return DeployedFile{Name: platform.TargetName(), Size: size}, nil
}

// copyFile copies src over dst with executable permissions, truncating
// any existing file. Returns the number of bytes written.
//
//nolint:gosec // G304: both paths derive from resolved pipeline state
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(err, "opening source")
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, executableMode)
	if err != nil {
		return 0, errors.Wrap(err, "creating target")
	}

	written, copyErr := io.Copy(out, in)

	if closeErr := out.Close(); closeErr != nil && copyErr == nil {
		return written, errors.Wrap(closeErr, "closing target")
	}

	if copyErr != nil {
		return written, errors.Wrap(copyErr, "copying")
	}

	return written, nil
}
