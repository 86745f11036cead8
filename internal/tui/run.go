package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/logging"
)

// Options configures Run
type Options struct {
	Theme Theme

	// Input and Output default to the terminal
	Input  io.Reader
	Output io.Writer

	// Inline renders in the normal screen buffer instead of the alternate one
	Inline bool
}

// Run drives f until it is submitted or cancelled. Cancelling ctx or
// pressing ctrl+c cancels the form.
func Run(ctx context.Context, f *form.Form, opts Options) error {
	if opts.Theme.Name == "" {
		opts.Theme = DarkTheme()
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	logging.Debug("Starting form program")
	p := tea.NewProgram(New(f, opts.Theme), progOpts...)
	_, err := p.Run()

	if f.Result() == form.StatusActive {
		f.Cancel()
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run form: %w", err)
	}
	return nil
}
