// Package shortcut manages the desktop-menu launcher entry for an
// installation: a console window pre-seeded with usage hints, placed in
// the platform's shared program-launcher location.
package shortcut

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/platform"
	"github.com/ruping/ruping-setup/pkg/logger"
)

const entryFileMode = 0o755

// batchTemplate opens a command prompt with the usage hints printed.
const batchTemplate = `@echo off
title {{.Product}} Console
echo {{.Product}} network probe
echo.
echo   {{.Canonical}} 8.8.8.8              basic probe
echo   {{.Canonical}} -t example.com       probe until interrupted
echo   {{.Canonical}} --help               all options
echo.
echo Installed in: {{.InstallDir}}
echo.
cmd /k
`

// desktopTemplate launches a terminal that prints the usage hints and
// hands over to an interactive shell.
const desktopTemplate = `[Desktop Entry]
Name={{.Product}} Console
Type=Application
Exec=sh -c "echo '{{.Product}} network probe'; echo; echo '  {{.Canonical}} 8.8.8.8              basic probe'; echo '  {{.Canonical}} --help               all options'; echo; exec sh"
Comment=Console with {{.Product}} usage hints
Categories=Network;System;
Terminal=true
`

// Manager creates and removes the launcher entry in a single directory.
type Manager struct {
	dir string
	log logger.Logger
}

// NewManager returns a Manager for the platform's shared launcher location.
func NewManager(log logger.Logger) *Manager {
	return NewManagerWithDir(defaultDir(runtime.GOOS), log)
}

// NewManagerWithDir returns a Manager rooted at an explicit directory.
func NewManagerWithDir(dir string, log logger.Logger) *Manager {
	return &Manager{dir: dir, log: log}
}

// EntryPath returns the full path of the launcher entry.
func (m *Manager) EntryPath() string {
	return filepath.Join(m.dir, fileName(runtime.GOOS))
}

// Create writes the launcher entry, overwriting any existing one.
func (m *Manager) Create(installDir string) error {
	content, err := render(runtime.GOOS, installDir)
	if err != nil {
		return err
	}

	path := m.EntryPath()

	if err := os.WriteFile(path, content, entryFileMode); err != nil {
		return errors.Wrapf(err, "writing launcher entry %s", path)
	}

	m.log.Info("created launcher entry", "path", path)

	return nil
}

// Remove deletes the launcher entry. A missing entry is not an error.
func (m *Manager) Remove() error {
	path := m.EntryPath()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "removing launcher entry %s", path)
	}

	m.log.Info("removed launcher entry", "path", path)

	return nil
}

func fileName(goos string) string {
	if goos == "windows" {
		return platform.ProductName + " Console.bat"
	}

	return "ruping.desktop"
}

func defaultDir(goos string) string {
	if goos == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}

		return filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs")
	}

	return "/usr/share/applications"
}

func render(goos, installDir string) ([]byte, error) {
	text := desktopTemplate
	if goos == "windows" {
		text = batchTemplate
	}

	tmpl, err := template.New("entry").Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parsing launcher template")
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, map[string]string{
		"Product":    platform.ProductName,
		"Canonical":  platform.Aliases()[0],
		"InstallDir": installDir,
	})
	if err != nil {
		return nil, errors.Wrap(err, "rendering launcher template")
	}

	return buf.Bytes(), nil
}
