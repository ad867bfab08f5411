// Package privilege checks whether the current process runs with the
// elevated rights needed to mutate machine-wide state.
package privilege

import (
	"github.com/cockroachdb/errors"
)

// ErrNotElevated is returned when the process lacks administrative rights.
var ErrNotElevated = errors.New("administrator privileges required")

// Checker reports the privilege level of the current process. It is an
// injectable capability so pipeline logic can be tested without OS calls.
type Checker interface {
	// IsElevated reports whether the process runs with elevated rights.
	IsElevated() bool
}

// Require returns ErrNotElevated with an actionable message when the
// checker reports a non-elevated process. There is no retry or
// self-elevation: re-running with sufficient rights is up to the operator.
func Require(c Checker) error {
	if c.IsElevated() {
		return nil
	}

	return errors.WithHint(
		ErrNotElevated,
		"re-run this program as administrator (or with sudo)",
	)
}
