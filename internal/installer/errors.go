package installer

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrBuildFailed is returned when no pre-built executable exists and
	// the build tool did not produce one. Nothing has been deployed yet.
	ErrBuildFailed = errors.New("building the executable failed")

	// ErrCancelled is returned when the operator backs out of directory
	// resolution. It is a non-error abort: no mutation has happened.
	ErrCancelled = errors.New("installation cancelled")

	// ErrDeclined is returned when the operator answers the uninstall
	// confirmation with anything but an affirmative. No mutation happens.
	ErrDeclined = errors.New("uninstall declined")

	// ErrNotFound is returned when no existing installation could be
	// located for uninstall.
	ErrNotFound = errors.New("installation not found")
)

// IsAbort reports whether err is an operator abort rather than a failure.
// Aborts map to a distinct process exit code.
func IsAbort(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, ErrDeclined)
}
