package installer

import (
	"github.com/ruping/ruping-setup/internal/manifest"
)

// Mode selects between prompting the operator and using defaults.
type Mode int

const (
	// ModeInteractive prompts the operator at ambiguous or destructive steps.
	ModeInteractive Mode = iota

	// ModeSilent never blocks on operator input and uses defaults throughout.
	ModeSilent
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	if m == ModeSilent {
		return "silent"
	}

	return "interactive"
}

// Options carries the per-invocation parameters of the pipeline.
type Options struct {
	// Dir is an explicit installation directory, used verbatim when set.
	Dir string

	// NoPath suppresses the machine PATH mutation during install.
	NoPath bool

	// Mode governs whether ambiguous steps prompt or use defaults.
	Mode Mode

	// Version is recorded in the install manifest.
	Version string
}

// DeployedFile describes one file placed into the install directory.
type DeployedFile struct {
	Name string
	Size int64
}

// InstallResult summarizes a completed installation.
type InstallResult struct {
	// Dir is the resolved installation directory.
	Dir string

	// Deployed lists the files written into Dir.
	Deployed []DeployedFile

	// PathChanged is true when the PATH list was actually written.
	PathChanged bool

	// PathSkipped is true when PATH mutation was suppressed by request.
	PathSkipped bool

	// Relation describes this install against a previously recorded one,
	// empty when the directory held no manifest.
	Relation manifest.Relation

	// Built is true when the executable had to be built on demand.
	Built bool
}

// UninstallResult summarizes a completed uninstall.
type UninstallResult struct {
	// Dir is the directory that was uninstalled.
	Dir string

	// PathRemoved is true when the PATH list was actually written.
	PathRemoved bool

	// Warnings lists non-fatal problems; the uninstall still completed.
	Warnings []string
}
