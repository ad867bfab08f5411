package prompt

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct{}

// NewHuhPrompter creates a new HuhPrompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Select presents a list of choices and returns the chosen value.
func (*HuhPrompter) Select(title string, options []Option) (string, error) {
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		huhOptions = append(huhOptions, huh.NewOption(opt.Label, opt.Value))
	}

	var value string

	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&value).
		Run()
	if err != nil {
		return "", wrapHuhErr(err)
	}

	return value, nil
}

// Confirm asks a yes/no question.
func (*HuhPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	value := defaultValue

	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return false, wrapHuhErr(err)
	}

	return value, nil
}

// Input prompts for a single line of text.
func (*HuhPrompter) Input(promptText, defaultValue string) (string, error) {
	value := defaultValue

	err := huh.NewInput().
		Title(promptText).
		Placeholder(defaultValue).
		Value(&value).
		Run()
	if err != nil {
		return "", wrapHuhErr(err)
	}

	return value, nil
}

// PickFolder blocks on a directory picker rooted at initialDir.
func (*HuhPrompter) PickFolder(title, initialDir string) (string, error) {
	var value string

	err := huh.NewFilePicker().
		Title(title).
		CurrentDirectory(initialDir).
		DirAllowed(true).
		FileAllowed(false).
		Value(&value).
		Run()
	if err != nil {
		return "", wrapHuhErr(err)
	}

	if value == "" {
		return "", ErrCancelled
	}

	return value, nil
}

// Pause waits for a newline so the operator can read the output.
func (*HuhPrompter) Pause(message string) {
	fmt.Fprintf(os.Stdout, "\n%s", message)

	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}

// wrapHuhErr maps a user abort (Esc, Ctrl-C) to ErrCancelled.
func wrapHuhErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}

	return errors.Wrap(err, "prompt failed")
}
