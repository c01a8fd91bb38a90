package tui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/term"

	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/i18n"
)

const (
	inEnter     = "\r"
	inDown      = "\x1b[B"
	inBackspace = "\x7f"
)

func runScript(t *testing.T, existing config.Config, script string, opts ...Option) (config.Config, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	opts = append([]Option{
		WithInput(strings.NewReader(script)),
		WithOutput(&out),
		WithLogger(zap.NewNop()),
	}, opts...)

	return Run(ctx, existing, opts...)
}

func TestRunAcceptsDefaults(t *testing.T) {
	existing := config.Defaults()

	got, err := runScript(t, existing, strings.Repeat(inEnter, 4))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), got)
}

func TestRunScenario(t *testing.T) {
	script := inDown + inEnter + // Arabic
		inDown + inEnter + // OpenAI
		strings.Repeat(inBackspace, len("gpt-4.1-mini")) +
		"gpt-4o" + inEnter +
		inEnter

	got, err := runScript(t, config.Defaults(), script, WithTranslator(i18n.Bundled()))
	require.NoError(t, err)

	assert.Equal(t, "ar", got.Language)
	assert.Equal(t, config.ProviderOpenAI, got.Provider.Kind)
	assert.Equal(t, "gpt-4o", got.Provider.Model)
	assert.Equal(t, "OPENAI_API_KEY", got.Provider.APIKeyEnv)
	assert.Empty(t, got.Provider.BaseURL)
	require.NoError(t, got.Validate())
}

func TestRunCancelled(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"quit on first step", "q"},
		{"back on first step", "b"},
		{"ctrl+c on model step", inEnter + inEnter + "\x03"},
		{"quit on summary", inEnter + inEnter + inEnter + "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := config.Defaults()

			got, err := runScript(t, existing, tt.script)
			require.Error(t, err)
			assert.True(t, IsCancelled(err), "Run() error = %v, want cancellation", err)
			assert.Equal(t, config.Config{}, got)
			assert.Equal(t, config.Defaults(), existing)
		})
	}
}

func TestRunValidationFailure(t *testing.T) {
	existing := config.Defaults()
	existing.Version = 7

	_, err := runScript(t, existing, strings.Repeat(inEnter, 4))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe that never delivers input keeps the session open until the
	// context ends it.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = Run(ctx, config.Defaults(),
		WithInput(r),
		WithOutput(&bytes.Buffer{}),
		WithLogger(zap.NewNop()),
	)
	require.Error(t, err)
	assert.True(t, IsCancelled(err), "Run() error = %v, want cancellation", err)
}

func TestRunLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := runScript(t, config.Defaults(), strings.Repeat(inEnter, 4), WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("Step transition").Len())
	assert.Equal(t, 1, logs.FilterMessage("Wizard completed").Len())
}

func TestRunRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}

	_, err := Run(context.Background(), config.Defaults(), WithLogger(zap.NewNop()))
	require.Error(t, err)
	assert.True(t, IsTerminalError(err))

	var wErr *WizardError
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, ErrTypeTerminalSetup, wErr.Type)
}

func TestAcquireTerminalCustomInput(t *testing.T) {
	var out bytes.Buffer
	g, err := acquireTerminal(strings.NewReader(""), &out, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, g.interactive)
	assert.Nil(t, g.state)

	g.release(true)
	assert.Empty(t, out.String(), "nothing to restore on a non-terminal")
}

func TestAcquireTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)
	defer f.Close()

	g, err := acquireTerminal(f, nil, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, g.interactive)
	assert.Equal(t, os.Stdout, g.output)
}

func TestReleaseRestoresScreenOnFailure(t *testing.T) {
	var out bytes.Buffer
	g := &terminalGuard{output: &out, interactive: true, log: zap.NewNop()}

	g.release(true)
	assert.Equal(t, "\x1b[?1049l\x1b[?25h", out.String())

	g.release(true)
	assert.Equal(t, "\x1b[?1049l\x1b[?25h", out.String(), "release is idempotent")

	out.Reset()
	g = &terminalGuard{output: &out, interactive: true, log: zap.NewNop()}
	g.release(false)
	assert.Empty(t, out.String(), "a clean exit leaves screen handling to the program")

	var nilGuard *terminalGuard
	assert.NotPanics(t, func() { nilGuard.release(true) })
}
