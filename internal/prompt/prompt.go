// Package prompt provides the interactive prompts used by the setup
// pipeline. All operator interaction goes through the Prompter
// capability so pipeline logic stays free of console dependencies and
// tests can script every answer.
package prompt

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// ErrCancelled is returned when the operator backs out of a prompt
// instead of answering it. It is a non-error abort for callers: nothing
// failed, the operator changed their mind.
var ErrCancelled = errors.New("cancelled by operator")

// Option is a single selectable choice.
type Option struct {
	// Label is the text shown to the operator.
	Label string

	// Value is returned when the option is chosen.
	Value string
}

// Prompter defines one method per prompt type the pipeline needs.
type Prompter interface {
	// Select presents a fixed list of choices and returns the chosen value.
	Select(title string, options []Option) (string, error)

	// Confirm asks a yes/no question. Only an affirmative answer returns
	// true; empty input returns defaultValue.
	Confirm(question string, defaultValue bool) (bool, error)

	// Input prompts for a single line of text.
	Input(prompt, defaultValue string) (string, error)

	// PickFolder blocks until the operator chooses a directory, starting
	// at initialDir. Backing out returns ErrCancelled.
	PickFolder(title, initialDir string) (string, error)

	// Pause blocks until the operator acknowledges, so console output can
	// be read before the window closes. Best effort, never fails.
	Pause(message string)
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// New returns the huh-based prompter on a terminal and the plain stdio
// fallback otherwise.
//
//nolint:ireturn // constructor returns the interface for injection
func New() Prompter {
	if IsTerminal() {
		return NewHuhPrompter()
	}

	return NewStdPrompter()
}
