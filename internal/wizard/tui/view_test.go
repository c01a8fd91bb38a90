package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-dev/aion/internal/config"
)

// wide gives the model a terminal large enough that no pane text wraps
func wide(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return m
}

func TestViewLanguageStep(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "AION Setup")
	assert.Contains(t, view, "Step 1/4: Language")
	assert.Contains(t, view, "> English (en)")
	assert.Contains(t, view, "العربية (ar)")
	assert.Contains(t, view, "Norsk (no) · Not supported yet")
	assert.Contains(t, view, "Choose the UI language for AION.")
	assert.Contains(t, view, "●")
	assert.NotContains(t, view, "[1][2][3][4]")
	assert.NotContains(t, view, "toggles off")
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
	for i, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 100, "line %d overflows", i)
	}
}

func TestViewDefaultSize(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	lines := strings.Split(m.View(), "\n")
	assert.GreaterOrEqual(t, len(lines), DefaultHeight)
	for i, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), DefaultWidth, "line %d overflows", i)
	}
}

func TestViewWithoutColors(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, runes("c"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "[1][2][3][4]")
	assert.NotContains(t, view, "●")
	assert.Contains(t, view, "Colors: OFF | Animation: ON")
}

func TestViewProgressIndicator(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	st := newStyles(true)

	assert.Equal(t, 4, strings.Count(ansi.Strip(m.renderProgress(st)), "●"))

	m.useColors = false
	assert.Equal(t, "[1][2][3][4]", m.renderProgress(newStyles(false)))
}

func TestProgressDotColors(t *testing.T) {
	var (
		cur  = CurrentColor
		done = SecondaryColor
		todo = ErrorColor
	)

	tests := []struct {
		name   string
		step   Step
		modify func(*config.Config)
		want   [StepCount]lipgloss.Color
	}{
		{
			name: "valid config on first step",
			step: StepLanguage,
			want: [StepCount]lipgloss.Color{cur, done, done, done},
		},
		{
			name: "back from summary",
			step: StepProvider,
			want: [StepCount]lipgloss.Color{done, cur, done, done},
		},
		{
			name:   "unsupported language",
			step:   StepProvider,
			modify: func(c *config.Config) { c.Language = "fr" },
			want:   [StepCount]lipgloss.Color{todo, cur, done, todo},
		},
		{
			name:   "blank model",
			step:   StepLanguage,
			modify: func(c *config.Config) { c.Provider.Model = "  " },
			want:   [StepCount]lipgloss.Color{cur, done, todo, todo},
		},
		{
			name:   "unknown provider",
			step:   StepSummary,
			modify: func(c *config.Config) { c.Provider.Kind = "gemini" },
			want:   [StepCount]lipgloss.Color{done, todo, done, cur},
		},
	}

	st := newStyles(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			if tt.modify != nil {
				tt.modify(&cfg)
			}
			m := newTestModel(t, cfg)
			m.step = tt.step

			for i, want := range tt.want {
				assert.Equal(t, want, m.dotStyle(st, Step(i)).GetForeground(), "dot %d", i+1)
			}
		})
	}
}

func TestViewSpinner(t *testing.T) {
	m := newTestModel(t, config.Defaults())

	frames := map[int]string{0: "|", 1: "/", 2: "-", 3: "\\", 4: "|"}
	for tick, want := range frames {
		m.tick = tick
		assert.Equal(t, want, m.spinnerFrame(), "tick %d", tick)
	}

	m.tick = 2
	assert.Equal(t, "..", m.ellipsisFrame())

	m.useAnimation = false
	header := ansi.Strip(m.renderHeader(newStyles(false), 200))
	assert.NotContains(t, header, "..")
	assert.NotContains(t, header, "-")
}

func TestViewProviderStep(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, keyEnter, keyDown)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Step 2/4: Provider")
	assert.Contains(t, view, "Ollama")
	assert.Contains(t, view, "> OpenAI")
	assert.Contains(t, view, "Claude")
	assert.Contains(t, view, "OpenRouter")
	assert.Contains(t, view, "Choose your AI provider.")
}

func TestViewModelStep(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, keyEnter, keyEnter, runes(":7b"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Step 3/4: Model")
	assert.Contains(t, view, "Model (Ollama)")
	assert.Contains(t, view, "Type model name then press Enter:")
	assert.Contains(t, view, "> mistral:7b")
	assert.Contains(t, view, "ctrl+c")
	assert.Contains(t, view, "c/a typed, toggles off")
}

func TestViewSummaryStep(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, keyEnter, keyDown, keyDown, keyDown, keyEnter, keyEnter)
	require.Equal(t, StepSummary, m.step)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Step 4/4: Summary")
	assert.Contains(t, view, "Language: English (en)")
	assert.Contains(t, view, "Provider: OpenRouter")
	assert.Contains(t, view, "Model: openai/gpt-4o-mini")
	assert.Contains(t, view, "Base URL: https://openrouter.ai/api/v1")
	assert.Contains(t, view, "API key env: OPENROUTER_API_KEY")
	assert.Contains(t, view, "Enter = Save & exit")
}

func TestViewSummaryOmitsAbsentFields(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, keyEnter, keyEnter, keyEnter)
	require.Equal(t, StepSummary, m.step)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Base URL: http://localhost:11434")
	assert.NotContains(t, view, "API key env")
}

func TestViewArabic(t *testing.T) {
	m := wide(t, newTestModel(t, config.Defaults()))
	m, _ = send(t, m, keyDown, keyEnter)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "الخطوة 2/4: المزوّد")
	assert.Contains(t, view, "تم اختيار اللغة")
}

func TestViewNarrowTerminal(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 50})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "English (en)")
	assert.Contains(t, view, "Help")
}

func TestViewAfterExitIsEmpty(t *testing.T) {
	m := newTestModel(t, config.Defaults())
	m, _ = send(t, m, runes("q"))

	assert.Equal(t, "", m.View())
}
