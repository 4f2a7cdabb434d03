// Package output reports pipeline progress to the user.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// Step describes one unit of user-visible progress.
type Step struct {
	// Title is shown while the step runs, e.g. "Installing dev dependency postcss".
	Title string

	// Mark is printed in front of Done once the step succeeds.
	Mark string

	// Done is the message persisted after success, e.g. "postcss installed".
	Done string
}

// Reporter runs an action while showing its progress.
type Reporter interface {
	Run(ctx context.Context, step Step, action func() error) error
}

// Terminal reports progress with an animated spinner when the output is a TTY
// and falls back to plain lines otherwise.
type Terminal struct {
	out io.Writer
	tty bool

	// static draws the spinner as a single line instead of animating it.
	static bool
}

// NewTerminal creates a Terminal writing to f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{
		out: f,
		tty: term.IsTerminal(int(f.Fd())),
	}
}

// NewPlain creates a reporter that never animates. Used for pipes and tests.
func NewPlain(w io.Writer) *Terminal {
	return &Terminal{out: w}
}

// Run executes action, showing step.Title while it runs.
// A cancelled ctx stops the spinner and is returned as the step's error.
func (t *Terminal) Run(ctx context.Context, step Step, action func() error) error {
	var err error
	if t.tty {
		err = spinner.New().
			Context(ctx).
			Title(step.Title).
			Output(t.out).
			Accessible(t.static).
			ActionWithErr(func(context.Context) error { return action() }).
			Run()
	} else {
		fmt.Fprintln(t.out, StyleDim.Render(step.Title+"..."))
		err = action()
	}

	if err != nil {
		fmt.Fprintln(t.out, FormatFailure(step.Title))
		return err
	}
	fmt.Fprintln(t.out, FormatMark(step.Mark, step.Done))
	return nil
}
