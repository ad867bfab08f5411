// Package installer implements the install and uninstall pipelines for
// the RuPing executable: privilege gate, build fallback, directory
// resolution, deployment, alias launchers, PATH mutation, and the
// desktop-menu launcher entry.
//
// Both pipelines are strict linear sequences: each step blocks until
// complete and any failure skips all subsequent steps. The only
// exception is the uninstaller's final directory deletion, which is
// best effort by design.
package installer

import (
	"context"
	"os"

	"github.com/ruping/ruping-setup/internal/config"
	"github.com/ruping/ruping-setup/internal/exec"
	"github.com/ruping/ruping-setup/internal/manifest"
	"github.com/ruping/ruping-setup/internal/pathenv"
	"github.com/ruping/ruping-setup/internal/privilege"
	"github.com/ruping/ruping-setup/internal/prompt"
	"github.com/ruping/ruping-setup/internal/shortcut"
	"github.com/ruping/ruping-setup/pkg/logger"
)

// Setup wires the pipeline steps to their collaborators. Every
// OS-facing dependency is injectable so the pipelines can be exercised
// end to end against fakes.
type Setup struct {
	cfg        *config.Config
	log        logger.Logger
	prompter   prompt.Prompter
	checker    privilege.Checker
	path       *pathenv.Mutator
	shortcuts  *shortcut.Manager
	runner     exec.CommandRunner
	tools      exec.ToolChecker
	artifacts  []string
	candidates []string

	// removeDir deletes the install directory tree on uninstall. It is a
	// seam for exercising the best-effort deletion policy in tests.
	removeDir func(string) error
}

// Option overrides a Setup collaborator.
type Option func(*Setup)

// WithPrompter replaces the operator prompter.
func WithPrompter(p prompt.Prompter) Option {
	return func(s *Setup) { s.prompter = p }
}

// WithPrivilegeChecker replaces the elevation check.
func WithPrivilegeChecker(c privilege.Checker) Option {
	return func(s *Setup) { s.checker = c }
}

// WithPathMutator replaces the PATH mutator.
func WithPathMutator(m *pathenv.Mutator) Option {
	return func(s *Setup) { s.path = m }
}

// WithShortcutManager replaces the launcher-entry manager.
func WithShortcutManager(m *shortcut.Manager) Option {
	return func(s *Setup) { s.shortcuts = m }
}

// WithCommandRunner replaces the build-collaborator runner.
func WithCommandRunner(r exec.CommandRunner) Option {
	return func(s *Setup) { s.runner = r }
}

// WithToolChecker replaces the build-tool availability check.
func WithToolChecker(t exec.ToolChecker) Option {
	return func(s *Setup) { s.tools = t }
}

// WithArtifactCandidates replaces the probed pre-built executable paths.
func WithArtifactCandidates(paths []string) Option {
	return func(s *Setup) { s.artifacts = paths }
}

// WithCandidateDirs replaces the directories probed by the uninstall locator.
func WithCandidateDirs(dirs []string) Option {
	return func(s *Setup) { s.candidates = dirs }
}

// WithRemoveDir replaces the directory-tree deletion used by uninstall.
func WithRemoveDir(fn func(string) error) Option {
	return func(s *Setup) { s.removeDir = fn }
}

// New creates a Setup with real OS-backed collaborators, then applies opts.
func New(cfg *config.Config, log logger.Logger, opts ...Option) *Setup {
	s := &Setup{
		cfg:       cfg,
		log:       log,
		prompter:  prompt.New(),
		checker:   privilege.NewChecker(),
		path:      pathenv.NewMutator(pathenv.NewSystemStore(), log),
		shortcuts: shortcut.NewManager(log),
		runner:    exec.NewCommandRunner(),
		tools:     exec.NewToolChecker(),
		removeDir: os.RemoveAll,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Install runs the installation pipeline and returns a summary of what
// was placed on the machine.
func (s *Setup) Install(ctx context.Context, opts Options) (*InstallResult, error) {
	if err := privilege.Require(s.checker); err != nil {
		return nil, err
	}

	artifact, built, err := s.ensureArtifact(ctx)
	if err != nil {
		return nil, err
	}

	dir, err := s.resolveDir(opts)
	if err != nil {
		return nil, err
	}

	s.log.Info("installing", "dir", dir, "mode", opts.Mode.String())

	result := &InstallResult{
		Dir:      dir,
		Built:    built,
		Relation: s.previousInstall(dir, opts.Version),
	}

	deployed, err := s.deploy(artifact, dir)
	if err != nil {
		return nil, err
	}

	result.Deployed = append(result.Deployed, deployed)

	launchers, err := s.writeLaunchers(dir)
	if err != nil {
		return nil, err
	}

	result.Deployed = append(result.Deployed, launchers...)

	if opts.NoPath {
		result.PathSkipped = true

		s.log.Info("PATH mutation suppressed by request")
	} else {
		added, err := s.path.Add(dir)
		if err != nil {
			return nil, err
		}

		result.PathChanged = added
	}

	if err := s.shortcuts.Create(dir); err != nil {
		return nil, err
	}

	m := manifest.New(dir, opts.Version)
	if err := m.Write(); err != nil {
		return nil, err
	}

	s.log.Info("installation complete", "dir", dir)

	return result, nil
}

// previousInstall reports how this install relates to a manifest already
// present in dir. Empty when the directory holds no readable manifest.
func (s *Setup) previousInstall(dir, version string) manifest.Relation {
	existing, err := manifest.Read(dir)
	if err != nil {
		return ""
	}

	relation := manifest.Compare(existing.Version, version)

	s.log.Info("found existing installation",
		"dir", dir,
		"installed", existing.Version,
		"relation", string(relation),
	)

	return relation
}
