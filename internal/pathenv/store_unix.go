//go:build !windows

package pathenv

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// environmentFile is the machine-scope environment file consulted by PAM.
const environmentFile = "/etc/environment"

const environmentFileMode = 0o644

// fileStore reads and writes the PATH= line of an environment file.
type fileStore struct {
	path string
}

// NewSystemStore returns the Store backed by /etc/environment. Writing
// requires root.
//
//nolint:ireturn // constructor returns the interface for injection
func NewSystemStore() Store {
	return &fileStore{path: environmentFile}
}

// NewFileStore returns a Store backed by an arbitrary environment file.
//
//nolint:ireturn // constructor returns the interface for injection
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// Get returns the unquoted value of the PATH= line, or an empty string
// when the file or the line does not exist.
func (s *fileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", errors.Wrapf(err, "reading %s", s.path)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "PATH=") {
			continue
		}

		return strings.Trim(strings.TrimPrefix(trimmed, "PATH="), `"`), nil
	}

	return "", nil
}

// Set rewrites the PATH= line in place, preserving every other line.
// A missing line is appended; a missing file is created.
func (s *fileStore) Set(value string) error {
	pathLine := `PATH="` + value + `"`

	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "reading %s", s.path)
	}

	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	replaced := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "PATH=") {
			lines[i] = pathLine
			replaced = true
		}
	}

	if !replaced {
		lines = append(lines, pathLine)
	}

	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(s.path, []byte(content), environmentFileMode); err != nil {
		return errors.Wrapf(err, "writing %s", s.path)
	}

	return nil
}
