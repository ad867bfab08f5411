package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// StdPrompter implements Prompter over plain stdin/stdout, for
// environments without a usable terminal UI.
type StdPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdPrompter creates a StdPrompter on os.Stdin/os.Stdout.
func NewStdPrompter() *StdPrompter {
	return NewStdPrompterWith(os.Stdin, os.Stdout)
}

// NewStdPrompterWith creates a StdPrompter with a custom reader and
// writer (for testing).
func NewStdPrompterWith(reader io.Reader, writer io.Writer) *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Select prints a numbered list and reads the chosen index. Empty input
// cancels.
func (p *StdPrompter) Select(title string, options []Option) (string, error) {
	fmt.Fprintf(p.writer, "%s\n", title)

	for i, opt := range options {
		fmt.Fprintf(p.writer, "  %d) %s\n", i+1, opt.Label)
	}

	fmt.Fprintf(p.writer, "Choice [1-%d]: ", len(options))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	if line == "" {
		return "", ErrCancelled
	}

	index, err := strconv.Atoi(line)
	if err != nil || index < 1 || index > len(options) {
		return "", errors.Newf("invalid choice %q", line)
	}

	return options[index-1].Value, nil
}

// Confirm asks a yes/no question. Empty input returns the default; any
// answer other than an affirmative one returns false.
func (p *StdPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	fmt.Fprintf(p.writer, "%s [%s]: ", question, hint)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	if line == "" {
		return defaultValue, nil
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Input prompts for a single line of text, falling back to the default
// on empty input.
func (p *StdPrompter) Input(promptText, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", promptText, defaultValue)
	} else {
		fmt.Fprintf(p.writer, "%s: ", promptText)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	if line == "" {
		return defaultValue, nil
	}

	return line, nil
}

// PickFolder degrades to a typed path. Empty input cancels, matching
// the picker's back-out behavior.
func (p *StdPrompter) PickFolder(title, initialDir string) (string, error) {
	fmt.Fprintf(p.writer, "%s (press Enter to cancel)\n", title)
	fmt.Fprintf(p.writer, "Folder [%s]: ", initialDir)

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	if line == "" {
		return "", ErrCancelled
	}

	return line, nil
}

// Pause waits for a newline.
func (p *StdPrompter) Pause(message string) {
	fmt.Fprintf(p.writer, "\n%s", message)

	_, _ = p.reader.ReadString('\n')
}

func (p *StdPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "reading input")
	}

	return strings.TrimSpace(line), nil
}
