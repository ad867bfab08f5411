// Package platform holds the OS-specific naming and filesystem conventions
// for a RuPing installation.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// ProductName is the display name of the installed product and the
	// directory name appended to installation roots.
	ProductName = "RuPing"

	// binaryBase is the base name of the installed executable.
	binaryBase = "ruping"
)

// Aliases is the fixed set of command names registered by the installer.
// The canonical name comes first.
func Aliases() []string {
	return []string{"ruping", "rustping", "rping"}
}

// TargetName returns the file name of the installed executable.
func TargetName() string {
	return targetName(runtime.GOOS)
}

func targetName(goos string) string {
	if goos == "windows" {
		return binaryBase + ".exe"
	}

	return binaryBase
}

// LauncherName returns the file name of the forwarding launcher for an alias.
func LauncherName(alias string) string {
	return launcherName(runtime.GOOS, alias)
}

func launcherName(goos, alias string) string {
	if goos == "windows" {
		return alias + ".cmd"
	}

	return alias
}

// DefaultInstallDir returns the machine-wide installation directory:
// the platform's standard program root plus the product name.
func DefaultInstallDir() string {
	return defaultInstallDir(runtime.GOOS)
}

func defaultInstallDir(goos string) string {
	if goos == "windows" {
		root := os.Getenv("ProgramFiles")
		if root == "" {
			root = `C:\Program Files`
		}

		return filepath.Join(root, ProductName)
	}

	return filepath.Join("/opt", ProductName)
}

// UserInstallDir returns the per-user application-data installation directory.
func UserInstallDir() string {
	return userInstallDir(runtime.GOOS)
}

func userInstallDir(goos string) string {
	if goos == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, ProductName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ProductName)
	}

	if goos == "windows" {
		return filepath.Join(home, "AppData", "Local", ProductName)
	}

	return filepath.Join(home, ".local", "share", ProductName)
}

// CandidateDirs returns the ordered list of directories probed when
// locating an existing installation without an explicit path.
func CandidateDirs() []string {
	return candidateDirs(runtime.GOOS)
}

func candidateDirs(goos string) []string {
	if goos == "windows" {
		return []string{
			defaultInstallDir(goos),
			userInstallDir(goos),
			filepath.Join(`C:\`, ProductName),
		}
	}

	return []string{
		defaultInstallDir(goos),
		userInstallDir(goos),
		filepath.Join("/usr/local", ProductName),
	}
}

// ArtifactCandidates returns the relative paths probed for a pre-built
// executable, in order. The build tool places its output in the first.
func ArtifactCandidates() []string {
	name := TargetName()

	return []string{
		filepath.Join("target", "release", name),
		filepath.Join("..", "target", "release", name),
	}
}
