// Package manifest reads and writes the install-info manifest dropped
// into the installation directory. The uninstaller uses it to confirm a
// directory really holds an installation, and reinstalling over an
// existing manifest reports whether that is an upgrade or a downgrade.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
)

// FileName is the manifest file name inside the install directory.
const FileName = "install_info.json"

const manifestFileMode = 0o644

// Relation describes how a new version compares to an installed one.
type Relation string

const (
	// RelationUpgrade means the new version is higher.
	RelationUpgrade Relation = "upgrade"

	// RelationDowngrade means the new version is lower.
	RelationDowngrade Relation = "downgrade"

	// RelationReinstall means the versions are equal.
	RelationReinstall Relation = "reinstall"

	// RelationUnknown means at least one version is not semver (dev builds).
	RelationUnknown Relation = "unknown"
)

// Manifest records what an installation put on the machine.
type Manifest struct {
	InstallPath    string   `json:"install_path"`
	Version        string   `json:"version"`
	Aliases        []string `json:"aliases"`
	InstalledFiles []string `json:"installed_files"`
}

// New builds the manifest for a fresh installation at installDir.
func New(installDir, version string) *Manifest {
	files := []string{platform.TargetName(), FileName}
	for _, alias := range platform.Aliases() {
		files = append(files, platform.LauncherName(alias))
	}

	return &Manifest{
		InstallPath:    installDir,
		Version:        version,
		Aliases:        platform.Aliases(),
		InstalledFiles: files,
	}
}

// Path returns the manifest location for an install directory.
func Path(installDir string) string {
	return filepath.Join(installDir, FileName)
}

// Write persists the manifest into its install directory.
func (m *Manifest) Write() error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling manifest")
	}

	data = append(data, '\n')

	path := Path(m.InstallPath)
	if err := os.WriteFile(path, data, manifestFileMode); err != nil {
		return errors.Wrapf(err, "writing manifest %s", path)
	}

	return nil
}

// Read loads the manifest from an install directory. Returns
// os.ErrNotExist (wrapped) when no manifest is present.
func Read(installDir string) (*Manifest, error) {
	path := Path(installDir)

	data, err := os.ReadFile(path) //nolint:gosec // path derives from resolved install dir
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", path)
	}

	return &m, nil
}

// Compare reports how newVersion relates to oldVersion.
func Compare(oldVersion, newVersion string) Relation {
	oldV, err := semver.NewVersion(oldVersion)
	if err != nil {
		return RelationUnknown
	}

	newV, err := semver.NewVersion(newVersion)
	if err != nil {
		return RelationUnknown
	}

	switch newV.Compare(oldV) {
	case 1:
		return RelationUpgrade
	case -1:
		return RelationDowngrade
	default:
		return RelationReinstall
	}
}
