// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep the create workflow focused on
// resolution.
package interaction

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrPromptUnavailable is returned when input is required but the session
// cannot prompt (redirected stdin/stdout).
var ErrPromptUnavailable = errors.New("interactive input is not available")

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
	Select(title string, options []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether both in and out are terminals.
func IsInteractive(in, out *os.File) bool {
	return IsTerminal(in) && IsTerminal(out)
}

// Unavailable is a Prompter for non-interactive sessions. Every call fails
// with ErrPromptUnavailable naming what was asked for.
type Unavailable struct{}

func (Unavailable) Input(title string, _ []string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrPromptUnavailable, title)
}

func (Unavailable) Select(title string, _ []string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrPromptUnavailable, title)
}

// WizardTitle returns the selection wizard heading for subject.
func WizardTitle(subject string) string {
	return fmt.Sprintf("Select a %s", subject)
}
