// Package prompt wraps the interactive selection the CLI offers behind a
// small driver interface so command logic stays testable without a
// terminal.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted reports that the user cancelled the prompt.
var ErrAborted = errors.New("prompt: aborted")

// Driver presents a single-choice selection and returns the chosen index.
type Driver interface {
	Select(ctx context.Context, message string, options []string) (int, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the terminal-backed default driver.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, errors.New("prompt: no options to select from")
	}

	var out string
	sel := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(sel, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ErrAborted
		}
		return 0, err
	}

	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return 0, errors.New("prompt: selection not found in options")
}

// StaticDriver always picks the configured index. It backs tests and
// non-interactive defaults.
type StaticDriver struct {
	Index int
}

// Select returns the configured index, bounds-checked.
func (d StaticDriver) Select(_ context.Context, _ string, options []string) (int, error) {
	if d.Index < 0 || d.Index >= len(options) {
		return 0, errors.New("prompt: static index out of range")
	}
	return d.Index, nil
}
