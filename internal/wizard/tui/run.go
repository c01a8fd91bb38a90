package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
	"github.com/aion-dev/aion/internal/logging"
)

// Option configures Run
type Option func(*options)

type options struct {
	input      io.Reader
	output     io.Writer
	translator i18n.Translator
	logger     *zap.Logger
}

// WithInput reads keys from r instead of the terminal on stdin.
// Input that is not a terminal is accepted as is, which is how tests
// script a session.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput renders to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithTranslator sets the translation service used for all UI text
func WithTranslator(t i18n.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithLogger sets the logger for the session
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Run shows the setup wizard, pre-filled from existing, and returns the
// configuration the user confirmed on the summary step.
//
// existing is never modified. On cancellation Run returns an error for which
// IsCancelled is true; the terminal is restored on every exit path.
func Run(ctx context.Context, existing config.Config, opts ...Option) (config.Config, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Named("wizard")
	}
	if o.translator == nil {
		o.translator = i18n.Bundled()
	}
	log := o.logger

	guard, err := acquireTerminal(o.input, o.output, log)
	if err != nil {
		log.Error("Terminal setup failed", zap.Error(err))
		return config.Config{}, err
	}

	failed := true
	defer func() {
		guard.release(failed)
	}()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(guard.input),
		tea.WithOutput(guard.output),
	}
	if guard.interactive {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(existing, o.translator, log), programOpts...)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrInterrupted) {
			failed = false
			log.Info("Wizard interrupted", zap.Error(err))
			return config.Config{}, &WizardError{
				Type:    ErrTypeCancelled,
				Message: "wizard interrupted",
				Err:     err,
			}
		}
		log.Error("Wizard terminated", zap.Error(err))
		return config.Config{}, newTerminalIOError("terminal session failed", err)
	}

	m, ok := final.(Model)
	if !ok {
		return config.Config{}, newTerminalIOError(fmt.Sprintf("unexpected model type %T", final), nil)
	}

	result, err := m.Result()
	failed = IsTerminalError(err)
	return result, err
}

// terminalGuard snapshots the input terminal's mode and restores it on release
type terminalGuard struct {
	input       io.Reader
	output      io.Writer
	interactive bool // Input is a real terminal

	fd       int
	state    *term.State
	log      *zap.Logger
	released bool
}

// acquireTerminal prepares the terminal for the wizard. With no custom input,
// stdin must be a terminal.
func acquireTerminal(input io.Reader, output io.Writer, log *zap.Logger) (*terminalGuard, error) {
	g := &terminalGuard{
		input:  input,
		output: output,
		log:    log,
	}
	if g.output == nil {
		g.output = os.Stdout
	}

	if g.input == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, newTerminalSetupError("stdin is not a terminal", nil)
		}
		g.input = os.Stdin
	}

	f, ok := g.input.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return g, nil
	}

	g.fd = int(f.Fd())
	state, err := term.GetState(g.fd)
	if err != nil {
		return nil, newTerminalSetupError("failed to read terminal state", err)
	}
	g.state = state
	g.interactive = true
	log.Debug("Terminal acquired", zap.Int("fd", g.fd))

	return g, nil
}

// release restores the snapshotted terminal mode. After a failed run it also
// leaves the alternate screen and shows the cursor, in case the program
// could not do so itself. Calling release more than once is a no-op.
func (g *terminalGuard) release(failed bool) {
	if g == nil || g.released {
		return
	}
	g.released = true

	if g.state != nil {
		if err := term.Restore(g.fd, g.state); err != nil {
			g.log.Warn("Failed to restore terminal state", zap.Error(err))
		}
	}

	if failed && g.interactive {
		_, _ = io.WriteString(g.output, ansi.ResetAltScreenSaveCursorMode+ansi.ShowCursor)
	}

	g.log.Debug("Terminal released", zap.Bool("failed", failed))
}
