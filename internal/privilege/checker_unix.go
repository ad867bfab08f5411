//go:build !windows

package privilege

import "os"

// rootChecker treats an effective uid of 0 as elevated.
type rootChecker struct{}

// NewChecker returns the platform privilege checker.
//
//nolint:ireturn // constructor returns the interface for injection
func NewChecker() Checker {
	return &rootChecker{}
}

// IsElevated reports whether the process runs as root.
func (*rootChecker) IsElevated() bool {
	return os.Geteuid() == 0
}
