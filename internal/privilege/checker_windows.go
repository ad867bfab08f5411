//go:build windows

package privilege

import (
	"golang.org/x/sys/windows"
)

// tokenChecker inspects the process token for elevation.
type tokenChecker struct{}

// NewChecker returns the platform privilege checker.
//
//nolint:ireturn // constructor returns the interface for injection
func NewChecker() Checker {
	return &tokenChecker{}
}

// IsElevated reports whether the process token carries the elevated flag.
func (*tokenChecker) IsElevated() bool {
	var token windows.Token

	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false
	}
	defer token.Close() //nolint:errcheck // query-only handle

	return token.IsElevated()
}
